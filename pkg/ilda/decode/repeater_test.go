// ABOUTME: Tests for the replay wrapper
// ABOUTME: Covers cache buildup, looping, and empty sources
package decode

import (
	"errors"
	"io"
	"testing"

	"github.com/lasertools/ilda-go/pkg/ilda"
)

// sliceSource yields canned frames, then io.EOF.
type sliceSource struct {
	frames []*ilda.Frame
	next   int
}

func (s *sliceSource) NextFrame() (*ilda.Frame, error) {
	if s.next >= len(s.frames) {
		return nil, io.EOF
	}
	f := s.frames[s.next]
	s.next++
	return f, nil
}

func TestRepeaterLoopsCachedFrames(t *testing.T) {
	src := &sliceSource{frames: []*ilda.Frame{
		{Projector: 1},
		{Projector: 2},
	}}
	r := NewRepeater(src)

	expected := []uint8{1, 2, 1, 2, 1}
	for i, projector := range expected {
		frame, err := r.NextFrame()
		if err != nil {
			t.Fatalf("pull %d: %v", i, err)
		}
		if frame.Projector != projector {
			t.Errorf("pull %d: expected projector %d, got %d", i, projector, frame.Projector)
		}
	}
}

func TestRepeaterPullsSourceExactlyOnce(t *testing.T) {
	src := &sliceSource{frames: []*ilda.Frame{{Projector: 5}}}
	r := NewRepeater(src)

	for i := 0; i < 4; i++ {
		if _, err := r.NextFrame(); err != nil {
			t.Fatalf("pull %d: %v", i, err)
		}
	}
	if src.next != 1 {
		t.Errorf("source advanced %d times, expected 1", src.next)
	}
}

func TestRepeaterEmptySourceStaysEmpty(t *testing.T) {
	r := NewRepeater(&sliceSource{})

	for i := 0; i < 2; i++ {
		if _, err := r.NextFrame(); err != io.EOF {
			t.Fatalf("pull %d: expected io.EOF, got %v", i, err)
		}
	}
}

// failingSource fails after one frame.
type failingSource struct {
	pulled bool
	err    error
}

func (s *failingSource) NextFrame() (*ilda.Frame, error) {
	if s.pulled {
		return nil, s.err
	}
	s.pulled = true
	return &ilda.Frame{}, nil
}

func TestRepeaterPropagatesDecodeErrors(t *testing.T) {
	decodeErr := errors.New("boom")
	r := NewRepeater(&failingSource{err: decodeErr})

	if _, err := r.NextFrame(); err != nil {
		t.Fatalf("first pull: %v", err)
	}
	if _, err := r.NextFrame(); !errors.Is(err, decodeErr) {
		t.Errorf("expected decode error to pass through, got %v", err)
	}
}
