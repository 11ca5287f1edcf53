// ABOUTME: Tests for the preview model
// ABOUTME: Tests frame advancement, termination, and rendering
package player

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lasertools/ilda-go/pkg/ilda"
)

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

func TestNewModel(t *testing.T) {
	m := NewModel(&sliceSource{}, 20)

	if m.frame != nil {
		t.Error("expected no frame before the first tick")
	}
	if m.frameCount != 0 {
		t.Errorf("expected frame count 0, got %d", m.frameCount)
	}
}

func TestNewModelClampsFPS(t *testing.T) {
	m := NewModel(&sliceSource{}, 0)
	if m.fps != 20 {
		t.Errorf("expected fallback to 20 fps, got %d", m.fps)
	}
}

func TestAdvancePullsOneFrame(t *testing.T) {
	src := &sliceSource{frames: []*ilda.Frame{
		{Projector: 1, Points: []ilda.Point{{X: 1, R: 255}}},
		{Projector: 2},
	}}
	m := NewModel(src, 20)

	m, done := m.advance()
	if done {
		t.Fatal("expected more frames")
	}
	if m.frame == nil || m.frame.Projector != 1 {
		t.Errorf("expected frame from projector 1, got %+v", m.frame)
	}
	if m.frameCount != 1 {
		t.Errorf("expected frame count 1, got %d", m.frameCount)
	}
	if src.next != 1 {
		t.Errorf("expected exactly one pull, source advanced %d times", src.next)
	}
}

func TestAdvanceEndsCleanlyOnEOF(t *testing.T) {
	m := NewModel(&sliceSource{}, 20)

	m, done := m.advance()
	if !done {
		t.Fatal("expected exhaustion")
	}
	if m.Err() != nil {
		t.Errorf("clean end of input should not report an error, got %v", m.Err())
	}
}

func TestAdvanceKeepsDecodeError(t *testing.T) {
	decodeErr := errors.New("bad block")
	m := NewModel(&errSource{err: decodeErr}, 20)

	m, done := m.advance()
	if !done {
		t.Fatal("expected termination on decode error")
	}
	if !errors.Is(m.Err(), decodeErr) {
		t.Errorf("expected decode error, got %v", m.Err())
	}
}

type errSource struct {
	err error
}

func (s *errSource) NextFrame() (*ilda.Frame, error) {
	return nil, s.err
}

func TestViewPlotsLitPoints(t *testing.T) {
	m := NewModel(&sliceSource{}, 20)
	m.width = 20
	m.height = 10
	m.frame = &ilda.Frame{Points: []ilda.Point{
		{X: 0, Y: 0, R: 255},
		{X: -32768, Y: -32768}, // blanked, must not be drawn
	}}
	m.frameCount = 1

	view := m.View()
	if view == "" {
		t.Fatal("expected rendered view")
	}
	if !strings.ContainsRune(view, '•') {
		t.Error("expected at least one plotted cell")
	}
}

func TestViewBeforeFirstFrame(t *testing.T) {
	m := NewModel(&sliceSource{}, 20)
	m.width = 20
	m.height = 10

	if view := m.View(); view != "Waiting for frames..." {
		t.Errorf("unexpected view %q", view)
	}
}
