package media

type Type string

const (
	// TypeGlyphs is a sheet of 5x5 glyphs laid side by side, one per ASCII code starting at GlyphFirst.
	TypeGlyphs Type = "glyphs"
)

const (
	GlyphFirst = ' '
	GlyphLast  = 't'
	GlyphCount = GlyphLast - GlyphFirst + 1
	GlyphSize  = 5
)

func (t Type) Size() (w int16, h int16) {
	switch t {
	case TypeGlyphs:
		return GlyphCount * GlyphSize, GlyphSize
	default:
		return 0, 0
	}
}
