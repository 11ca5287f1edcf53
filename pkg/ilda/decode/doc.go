// ABOUTME: Package documentation for the ILDA decoder
// ABOUTME: Frame decoding and replay over raw byte streams
// Package decode reads the ILDA animation exchange format.
//
// A Decoder turns a byte stream of header-delimited blocks into frames,
// resolving indexed colors through per-projector palettes. A Repeater
// caches one pass of any frame source and loops it.
//
// Example:
//
//	dec := decode.NewDecoder(file)
//	for {
//		frame, err := dec.NextFrame()
//		if err == io.EOF {
//			break
//		}
//		...
//	}
package decode
