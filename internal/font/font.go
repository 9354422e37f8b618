// Package font is the badge's 5x5 glyph set as a tinyfont.Fonter.
package font

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"neobadge/internal/media"
)

const Size = media.GlyphSize

// Glyph is one 5x5 glyph. Each row holds five bits, the most significant of them being the leftmost column.
type Glyph struct {
	Rune rune
	Rows [Size]uint8
}

func (g *Glyph) Draw(display drivers.Displayer, x int16, y int16, c color.RGBA) {
	for row := int16(0); row < Size; row++ {
		bits := g.Rows[row]
		if bits == 0 {
			continue
		}
		for col := int16(0); col < Size; col++ {
			if bits&(1<<(Size-1-col)) != 0 {
				display.SetPixel(x+col, y+row, c)
			}
		}
	}
}

func (g *Glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.Rune,
		Width:    Size,
		Height:   Size,
		XAdvance: Size + 1,
	}
}

// Font covers ASCII ' ' through 't'. Other runes map to an empty glyph.
type Font struct {
	glyphs [media.GlyphCount]Glyph
	blank  Glyph
}

// Load builds the font from the embedded glyph sheet.
func Load() (*Font, error) {
	img, err := media.LoadImage(media.TypeGlyphs, "font5x5")
	if err != nil {
		return nil, errors.New("load glyph sheet: " + err.Error())
	}
	b := img.Bounds()
	f := &Font{}
	for i := range f.glyphs {
		g := &f.glyphs[i]
		g.Rune = media.GlyphFirst + rune(i)
		for row := 0; row < Size; row++ {
			var bits uint8
			for col := 0; col < Size; col++ {
				bits <<= 1
				if media.Lit(img, b.Min.X+i*Size+col, b.Min.Y+row) {
					bits |= 1
				}
			}
			g.Rows[row] = bits
		}
	}
	return f, nil
}

func (f *Font) GetGlyph(r rune) tinyfont.Glypher {
	if r < media.GlyphFirst || r > media.GlyphLast {
		f.blank.Rune = r
		return &f.blank
	}
	return &f.glyphs[r-media.GlyphFirst]
}

func (f *Font) GetYAdvance() uint8 {
	return Size + 1
}

// Draw renders ch with its top-left corner at x, y. Pixels that land off the display are dropped, so a glyph can be
// shifted partly or wholly out of view; unlit glyph pixels leave the display untouched.
func Draw(d drivers.Displayer, f tinyfont.Fonter, ch byte, c color.RGBA, x, y int16) {
	tinyfont.DrawChar(d, f, x, y, rune(ch), c)
}
