// ABOUTME: Core ILDA data model
// ABOUTME: Defines points, frames, and the frame pull interface
package ilda

// Point is one plotted position with its resolved color. Z is 0 for
// points decoded from 2D record formats. Colors are 8-bit and already
// resolved: indexed records carry the palette entry's RGB here, and
// blanked points always carry (0,0,0).
type Point struct {
	X, Y, Z int16
	R, G, B uint8
}

// Blanked reports whether the point carries no light.
func (p Point) Blanked() bool {
	return p.R == 0 && p.G == 0 && p.B == 0
}

// Frame is one animation frame: the projector it belongs to and its
// points in drawing order.
type Frame struct {
	Projector uint8
	Points    []Point
}

// FrameSource yields animation frames one at a time. NextFrame returns
// io.EOF once the stream is exhausted; a source is not rewindable and
// must not be shared between consumers.
type FrameSource interface {
	NextFrame() (*Frame, error)
}
