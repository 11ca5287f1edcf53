// ABOUTME: Color palette model for indexed ILDA records
// ABOUTME: Per-projector palette table with a fixed 64-entry default
package ilda

// Color is one palette entry.
type Color struct {
	R, G, B uint8
}

// Palette is an ordered list of up to 256 colors. Indexed records refer
// to entries by position.
type Palette []Color

// defaultPalette is the 64-entry rainbow ramp projectors fall back to
// when no palette block has been loaded for them.
var defaultPalette = Palette{
	{255, 0, 0}, {255, 16, 0}, {255, 32, 0}, {255, 48, 0},
	{255, 64, 0}, {255, 80, 0}, {255, 96, 0}, {255, 112, 0},
	{255, 128, 0}, {255, 144, 0}, {255, 160, 0}, {255, 176, 0},
	{255, 192, 0}, {255, 208, 0}, {255, 224, 0}, {255, 240, 0},
	{255, 255, 0}, {224, 255, 0}, {192, 255, 0}, {160, 255, 0},
	{128, 255, 0}, {96, 255, 0}, {64, 255, 0}, {32, 255, 0},
	{0, 255, 0}, {0, 255, 36}, {0, 255, 73}, {0, 255, 109},
	{0, 255, 146}, {0, 255, 182}, {0, 255, 219}, {0, 255, 255},
	{0, 227, 255}, {0, 198, 255}, {0, 170, 255}, {0, 142, 255},
	{0, 113, 255}, {0, 85, 255}, {0, 56, 255}, {0, 28, 255},
	{0, 0, 255}, {32, 0, 255}, {64, 0, 255}, {96, 0, 255},
	{128, 0, 255}, {160, 0, 255}, {192, 0, 255}, {224, 0, 255},
	{255, 0, 255}, {255, 32, 255}, {255, 64, 255}, {255, 96, 255},
	{255, 128, 255}, {255, 160, 255}, {255, 192, 255}, {255, 224, 255},
	{255, 255, 255}, {255, 224, 224}, {255, 192, 192}, {255, 160, 160},
	{255, 128, 128}, {255, 96, 96}, {255, 64, 64}, {255, 32, 32},
}

// DefaultPalette returns the built-in 64-entry palette. Callers must
// treat it as read-only.
func DefaultPalette() Palette {
	return defaultPalette
}

// PaletteTable maps projector ids to their loaded palettes. The zero
// value is ready to use.
type PaletteTable struct {
	palettes map[uint8]Palette
}

// Set replaces the whole palette for a projector. Any previously loaded
// palette for that projector is discarded.
func (t *PaletteTable) Set(projector uint8, p Palette) {
	if t.palettes == nil {
		t.palettes = make(map[uint8]Palette)
	}
	t.palettes[projector] = p
}

// Lookup returns the palette loaded for a projector, or the default
// palette if none has been loaded.
func (t *PaletteTable) Lookup(projector uint8) Palette {
	if p, ok := t.palettes[projector]; ok {
		return p
	}
	return defaultPalette
}
