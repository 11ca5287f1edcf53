// ABOUTME: Caching replay wrapper around a frame source
// ABOUTME: Plays the wrapped source once, then loops the cache forever
package decode

import (
	"errors"
	"io"

	"github.com/lasertools/ilda-go/pkg/ilda"
)

// Repeater wraps a FrameSource and replays it endlessly: frames are
// cached on the first pass, then served from the cache in a loop. A
// Repeater over an empty source stays empty and keeps returning io.EOF.
type Repeater struct {
	src       ilda.FrameSource
	frames    []*ilda.Frame
	next      int
	repeating bool
}

// NewRepeater wraps src. The Repeater takes over the source; nothing
// else may pull from it afterwards.
func NewRepeater(src ilda.FrameSource) *Repeater {
	return &Repeater{src: src}
}

// NextFrame returns the next frame, switching to cached replay once the
// underlying source is exhausted. Decode errors from the first pass are
// passed through and end the replay.
func (r *Repeater) NextFrame() (*ilda.Frame, error) {
	if !r.repeating {
		frame, err := r.src.NextFrame()
		if err == nil {
			r.frames = append(r.frames, frame)
			return frame, nil
		}
		if !errors.Is(err, io.EOF) {
			return nil, err
		}
		r.repeating = true
	}

	if len(r.frames) == 0 {
		return nil, io.EOF
	}
	frame := r.frames[r.next]
	r.next = (r.next + 1) % len(r.frames)
	return frame, nil
}
