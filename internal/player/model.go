// ABOUTME: Bubbletea model for the terminal frame preview
// ABOUTME: Pulls one frame per tick and rasterizes it onto a cell grid
package player

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lasertools/ilda-go/pkg/ilda"
)

// Model drives the preview: one animation frame is pulled from the
// source per tick and plotted as colored cells.
type Model struct {
	src ilda.FrameSource
	fps int

	frame      *ilda.Frame
	frameCount int

	width  int
	height int

	quitting bool
	err      error
}

// NewModel creates a preview over src running at fps frames per second.
func NewModel(src ilda.FrameSource, fps int) Model {
	if fps < 1 {
		fps = 20
	}
	return Model{src: src, fps: fps}
}

// Err reports the decode error that ended the preview, if any.
func (m Model) Err() error {
	return m.err
}

type tickMsg time.Time

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// advance pulls the next frame. done is true once the source is
// exhausted or failed.
func (m Model) advance() (Model, bool) {
	frame, err := m.src.NextFrame()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			m.err = err
		}
		return m, true
	}
	m.frame = frame
	m.frameCount++
	return m, false
}

// Update handles ticks, resizes, and quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		next, done := m.advance()
		if done {
			next.quitting = true
			return next, tea.Quit
		}
		return next, next.tick()
	}

	return m, nil
}

// View plots the current frame. Dark points move the beam without
// lighting a cell, matching what the laser would show.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 || m.frame == nil {
		return "Waiting for frames..."
	}

	cols := m.width
	rows := m.height - 1 // keep one line for the status bar
	if cols < 2 || rows < 2 {
		return "Terminal too small"
	}

	cells := make([]ilda.Color, cols*rows)
	lit := make([]bool, cols*rows)
	for _, p := range m.frame.Points {
		if p.Blanked() {
			continue
		}
		col := (int(p.X) + 32768) * (cols - 1) / 65535
		row := (rows - 1) - (int(p.Y)+32768)*(rows-1)/65535
		i := row*cols + col
		cells[i] = ilda.Color{R: p.R, G: p.G, B: p.B}
		lit[i] = true
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if !lit[i] {
				b.WriteByte(' ')
				continue
			}
			c := cells[i]
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
			b.WriteString(style.Render("•"))
		}
		b.WriteByte('\n')
	}

	status := fmt.Sprintf("frame %d · projector %d · %d points · %d fps",
		m.frameCount, m.frame.Projector, len(m.frame.Points), m.fps)
	b.WriteString(lipgloss.NewStyle().Faint(true).Render(status + "  ('q' to quit)"))

	return b.String()
}

// Run plays the whole source in the terminal and blocks until it ends
// or the user quits.
func Run(src ilda.FrameSource, fps int) error {
	p := tea.NewProgram(NewModel(src, fps), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
