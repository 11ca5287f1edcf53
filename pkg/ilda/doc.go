// ABOUTME: Package documentation for the ILDA data model
// ABOUTME: Shared types consumed by the decode and encode packages
// Package ilda holds the shared data model for the ILDA animation
// pipeline: points, frames, palettes, and the FrameSource pull
// interface that connects decoders to consumers.
//
// Decoding lives in pkg/ilda/decode, WAV emission in pkg/ilda/encode.
package ilda
