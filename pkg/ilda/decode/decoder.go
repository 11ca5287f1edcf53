// ABOUTME: ILDA binary stream decoder
// ABOUTME: Pulls typed frames out of a byte stream, tracking palettes
package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/lasertools/ilda-go/pkg/ilda"
)

// Decode failures. All of them abort the stream; none are recoverable
// by calling NextFrame again.
var (
	// ErrCorruptFormat means the 4-byte magic tag was not "ILDA".
	ErrCorruptFormat = errors.New("corrupt ILDA stream")

	// ErrUnexpectedEOF means the stream ended inside a header or a
	// record body. A well-formed stream always ends with a zero-count
	// header, so a plain EOF is this error too.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrUnsupportedFormat means the header carried a format code this
	// decoder does not know.
	ErrUnsupportedFormat = errors.New("unsupported format code")
)

// ILDA format codes.
const (
	formatIndexed3D = 0
	formatIndexed2D = 1
	formatPalette   = 2
	formatTrue3D    = 4
	formatTrue2D    = 5
)

// statusBlanked is bit 6 of the record status byte: the beam is off for
// this point. Bit 7 (last point) is carried by the format but unused.
const statusBlanked = 0x40

// Decoder reads ILDA blocks from a byte stream and yields one frame per
// NextFrame call. It keeps the per-projector palette table across calls
// and nothing else; it is not safe for concurrent use.
type Decoder struct {
	r        io.Reader
	palettes ilda.PaletteTable
	done     bool
}

// NewDecoder wraps a byte stream. The stream must start at an ILDA
// header; the decoder never buffers ahead of the blocks it has been
// asked for.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// NextFrame decodes blocks until it has a renderable frame. Palette
// blocks are applied to the palette table and skipped. A zero-count
// header ends the stream: NextFrame returns io.EOF then and on every
// later call.
func (d *Decoder) NextFrame() (*ilda.Frame, error) {
	if d.done {
		return nil, io.EOF
	}

	for {
		h, err := d.readHeader()
		if err != nil {
			return nil, err
		}

		if h.RecordCount == 0 {
			d.done = true
			return nil, io.EOF
		}

		switch h.Format {
		case formatIndexed3D:
			return d.readIndexed3D(h)
		case formatIndexed2D:
			return d.readIndexed2D(h)
		case formatPalette:
			if err := d.readPalette(h); err != nil {
				return nil, err
			}
			// No frame to yield, move on to the next block.
		case formatTrue3D:
			return d.readTrue3D(h)
		case formatTrue2D:
			return d.readTrue2D(h)
		default:
			return nil, fmt.Errorf("format code %d: %w", h.Format, ErrUnsupportedFormat)
		}
	}
}

// header is the fixed 32-byte ILDA block header. Multi-byte fields are
// big-endian on the wire.
type header struct {
	Magic       [4]byte
	_           [3]byte
	Format      uint8
	Name        [8]byte
	Company     [8]byte
	RecordCount uint16
	FrameNumber uint16
	TotalFrames uint16
	Projector   uint8
	_           uint8
}

var magic = [4]byte{'I', 'L', 'D', 'A'}

func (d *Decoder) readHeader() (header, error) {
	var h header
	if err := binary.Read(d.r, binary.BigEndian, &h); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return h, fmt.Errorf("block header: %w", ErrUnexpectedEOF)
		}
		return h, fmt.Errorf("block header: %w", err)
	}
	if h.Magic != magic {
		return h, fmt.Errorf("header magic %q: %w", h.Magic[:], ErrCorruptFormat)
	}
	return h, nil
}

// readRecords fills recs from the stream in one call, so a block body
// is either fully consumed or the decode fails.
func (d *Decoder) readRecords(recs any, format uint8) error {
	if err := binary.Read(d.r, binary.BigEndian, recs); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("format %d record body: %w", format, ErrUnexpectedEOF)
		}
		return fmt.Errorf("format %d record body: %w", format, err)
	}
	return nil
}

type indexed3DRecord struct {
	X, Y, Z int16
	Status  uint8
	Index   uint8
}

type indexed2DRecord struct {
	X, Y   int16
	Status uint8
	Index  uint8
}

type true3DRecord struct {
	X, Y, Z int16
	Status  uint8
	B, G, R uint8
}

type true2DRecord struct {
	X, Y    int16
	Status  uint8
	B, G, R uint8
}

type paletteRecord struct {
	R, G, B uint8
}

// resolveIndexed applies the palette lookup rules: blanked points and
// out-of-range indices degrade to black instead of failing.
func resolveIndexed(p *ilda.Point, palette ilda.Palette, status, index uint8) {
	if status&statusBlanked != 0 || int(index) >= len(palette) {
		return
	}
	c := palette[index]
	p.R, p.G, p.B = c.R, c.G, c.B
}

func (d *Decoder) readIndexed3D(h header) (*ilda.Frame, error) {
	recs := make([]indexed3DRecord, h.RecordCount)
	if err := d.readRecords(recs, h.Format); err != nil {
		return nil, err
	}

	palette := d.palettes.Lookup(h.Projector)
	frame := &ilda.Frame{Projector: h.Projector, Points: make([]ilda.Point, len(recs))}
	for i, rec := range recs {
		p := ilda.Point{X: rec.X, Y: rec.Y, Z: rec.Z}
		resolveIndexed(&p, palette, rec.Status, rec.Index)
		frame.Points[i] = p
	}
	return frame, nil
}

func (d *Decoder) readIndexed2D(h header) (*ilda.Frame, error) {
	recs := make([]indexed2DRecord, h.RecordCount)
	if err := d.readRecords(recs, h.Format); err != nil {
		return nil, err
	}

	palette := d.palettes.Lookup(h.Projector)
	frame := &ilda.Frame{Projector: h.Projector, Points: make([]ilda.Point, len(recs))}
	for i, rec := range recs {
		p := ilda.Point{X: rec.X, Y: rec.Y}
		resolveIndexed(&p, palette, rec.Status, rec.Index)
		frame.Points[i] = p
	}
	return frame, nil
}

func (d *Decoder) readTrue3D(h header) (*ilda.Frame, error) {
	recs := make([]true3DRecord, h.RecordCount)
	if err := d.readRecords(recs, h.Format); err != nil {
		return nil, err
	}

	frame := &ilda.Frame{Projector: h.Projector, Points: make([]ilda.Point, len(recs))}
	for i, rec := range recs {
		p := ilda.Point{X: rec.X, Y: rec.Y, Z: rec.Z}
		if rec.Status&statusBlanked == 0 {
			p.R, p.G, p.B = rec.R, rec.G, rec.B
		}
		frame.Points[i] = p
	}
	return frame, nil
}

func (d *Decoder) readTrue2D(h header) (*ilda.Frame, error) {
	recs := make([]true2DRecord, h.RecordCount)
	if err := d.readRecords(recs, h.Format); err != nil {
		return nil, err
	}

	frame := &ilda.Frame{Projector: h.Projector, Points: make([]ilda.Point, len(recs))}
	for i, rec := range recs {
		p := ilda.Point{X: rec.X, Y: rec.Y}
		if rec.Status&statusBlanked == 0 {
			p.R, p.G, p.B = rec.R, rec.G, rec.B
		}
		frame.Points[i] = p
	}
	return frame, nil
}

// readPalette replaces the projector's whole palette with the block's
// entries, in order.
func (d *Decoder) readPalette(h header) error {
	recs := make([]paletteRecord, h.RecordCount)
	if err := d.readRecords(recs, h.Format); err != nil {
		return err
	}

	palette := make(ilda.Palette, len(recs))
	for i, rec := range recs {
		palette[i] = ilda.Color{R: rec.R, G: rec.G, B: rec.B}
	}
	d.palettes.Set(h.Projector, palette)
	return nil
}
