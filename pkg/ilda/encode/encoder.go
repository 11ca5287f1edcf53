// ABOUTME: Sample scheduler and WAV emission
// ABOUTME: Maps frames onto a fixed-rate interleaved 16-bit sample stream
package encode

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/lasertools/ilda-go/pkg/ilda"
)

// Defaults applied by Options for zero-valued fields.
const (
	DefaultFPS             = 20
	DefaultSampleRate      = 44100
	DefaultPointsPerSecond = 20000
	DefaultSignals         = "xyl"
)

const wavFormatPCM = 1

// Options configures a conversion run.
type Options struct {
	// FPS is the animation speed the point budget is split over.
	FPS int
	// SampleRate of the produced WAV stream, in samples per second.
	SampleRate int
	// PointsPerSecond is the point budget of the galvo hardware. Frames
	// holding more points than their share of the budget still draw
	// every point; the sample time per point shrinks instead.
	PointsPerSecond int
	// Signals selects the output channels, one per character, in order:
	// x, y, z, l (laser gate), r, g, b.
	Signals string
	// Invert lists axes ("xyz") negated before interpolation.
	Invert string
}

func (o Options) withDefaults() Options {
	if o.FPS == 0 {
		o.FPS = DefaultFPS
	}
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.PointsPerSecond == 0 {
		o.PointsPerSecond = DefaultPointsPerSecond
	}
	if o.Signals == "" {
		o.Signals = DefaultSignals
	}
	return o
}

// Encoder turns a frame source into a 16-bit little-endian PCM WAV
// stream, one channel per requested signal.
type Encoder struct {
	w       io.Writer
	opts    Options
	signals []signal
	invert  axisInversion
}

// NewEncoder validates the options and binds the destination. The
// signal spec is checked here so an unmapped channel character fails
// before any output is produced.
func NewEncoder(w io.Writer, opts Options) (*Encoder, error) {
	opts = opts.withDefaults()
	if opts.FPS < 1 {
		return nil, fmt.Errorf("fps %d: must be at least 1", opts.FPS)
	}
	if opts.SampleRate < 1 {
		return nil, fmt.Errorf("sample rate %d: must be at least 1", opts.SampleRate)
	}
	if opts.PointsPerSecond < 1 {
		return nil, fmt.Errorf("points per second %d: must be at least 1", opts.PointsPerSecond)
	}

	signals, err := parseSignals(opts.Signals)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		w:       w,
		opts:    opts,
		signals: signals,
		invert:  parseInvert(opts.Invert),
	}, nil
}

// Encode pulls src until exhaustion and writes the complete container,
// header sizes included. It advances the source exactly once per
// emitted frame and never prefetches.
func (e *Encoder) Encode(src ilda.FrameSource) error {
	sink, flush := e.sink()

	enc := wav.NewEncoder(sink, e.opts.SampleRate, 16, len(e.signals), wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(e.signals), SampleRate: e.opts.SampleRate},
		SourceBitDepth: 16,
	}

	fps := e.opts.FPS
	rate := e.opts.SampleRate
	pps := e.opts.PointsPerSecond

	// Galvo position carried across points and frames. Interpolation
	// starts from the origin before the first point.
	var lastX, lastY, lastZ int

	frameNumber := 0
	pointNumber := 0

	for {
		frame, err := src.NextFrame()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("pulling frame %d: %w", frameNumber, err)
		}

		frameInSecond := frameNumber % fps
		if frameInSecond == 0 {
			pointNumber = 0
		}

		// This frame's slice of the per-second point budget.
		pointBudget := groupSize(pps, fps, frameInSecond)

		data := buf.Data[:0]
		locations := len(frame.Points)
		for i, pt := range frame.Points {
			alloc := groupSize(pointBudget, locations, i)
			if alloc == 0 {
				// Skipped entirely: no samples, and the beam position
				// memory is not moved here either.
				continue
			}

			xi, yi, zi := pt.X, pt.Y, pt.Z
			if e.invert.x {
				xi = -xi
			}
			if e.invert.y {
				yi = -yi
			}
			if e.invert.z {
				zi = -zi
			}
			x, y, z := int(xi), int(yi), int(zi)

			dx := x - lastX
			dy := y - lastY
			dz := z - lastZ

			laser := 0
			if !pt.Blanked() {
				laser = math.MaxInt16
			}
			r := scaleColor(pt.R)
			g := scaleColor(pt.G)
			b := scaleColor(pt.B)

			for p := 1; p <= alloc; p++ {
				ix := lastX + dx*p/alloc
				iy := lastY + dy*p/alloc
				iz := lastZ + dz*p/alloc

				samples := groupSize(rate, pps, pointNumber)
				for q := 0; q < samples; q++ {
					for _, s := range e.signals {
						switch s {
						case signalX:
							data = append(data, ix)
						case signalY:
							data = append(data, iy)
						case signalZ:
							data = append(data, iz)
						case signalLaser:
							data = append(data, laser)
						case signalRed:
							data = append(data, r)
						case signalGreen:
							data = append(data, g)
						case signalBlue:
							data = append(data, b)
						}
					}
				}
				pointNumber++
			}

			lastX, lastY, lastZ = x, y, z
		}

		buf.Data = data
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing frame %d samples: %w", frameNumber, err)
		}
		frameNumber++
	}

	if frameNumber == 0 {
		// Empty input still yields a valid container with a zero-length
		// data chunk; force the header out.
		buf.Data = buf.Data[:0]
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing container header: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("patching container header: %w", err)
	}
	return flush()
}

// sink returns the WriteSeeker the wav encoder writes through. A
// destination that can seek is used directly so the header patch lands
// in place; anything else gets assembled in memory and flushed once.
func (e *Encoder) sink() (io.WriteSeeker, func() error) {
	if ws, ok := e.w.(io.WriteSeeker); ok {
		if _, err := ws.Seek(0, io.SeekCurrent); err == nil {
			return ws, func() error { return nil }
		}
	}

	buf := &seekBuffer{}
	return buf, func() error {
		if _, err := e.w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("flushing buffered container: %w", err)
		}
		return nil
	}
}

// scaleColor stretches an 8-bit channel over the positive int16 range.
func scaleColor(v uint8) int {
	return int(v) * math.MaxInt16 / 255
}
