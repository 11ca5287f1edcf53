// ABOUTME: Package documentation for the WAV encoder
// ABOUTME: Frame-to-sample scheduling and container emission
// Package encode renders ILDA frames as a multi-channel 16-bit PCM WAV
// stream for driving galvanometers and lasers through a sound card.
//
// The point budget is split fairly across the frames of each second,
// each frame's share across its points, and the sample rate across the
// scheduled points, so every point is drawn and the spread between any
// two allocations is at most one unit. Galvo motion is linearly
// interpolated between consecutive points.
package encode
