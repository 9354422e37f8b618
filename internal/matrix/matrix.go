// Package matrix is the framebuffer for the badge's LED chain. It is addressable both by chain index and, through
// drivers.Displayer, by x/y coordinate on the folded matrix.
package matrix

import (
	"errors"
	"image/color"
)

// Strip is the LED chain, e.g. a *ws2812.Device.
type Strip interface {
	WriteColors(buf []color.RGBA) error
}

// Rotation says which edge of the matrix the input wires enter from.
type Rotation uint8

const (
	WiresTop Rotation = iota
	WiresRight
	WiresBottom
	WiresLeft
)

func (r Rotation) String() string {
	switch r {
	case WiresTop:
		return "top"
	case WiresRight:
		return "right"
	case WiresBottom:
		return "bottom"
	case WiresLeft:
		return "left"
	default:
		return "INVALID"
	}
}

type Config struct {
	Width, Height int16
	Rotation      Rotation
	// MaxPixels is the chain length the buffer is sized for. Zero means Width*Height.
	MaxPixels int
}

type Matrix struct {
	strip  Strip
	w, h   int16
	rot    Rotation
	pix    []color.RGBA
	out    []color.RGBA
	n      int
	bright uint8
}

func New(strip Strip, cfg Config) (*Matrix, error) {
	if strip == nil {
		return nil, errors.New("must provide LED strip")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("invalid matrix size")
	}
	if cfg.Rotation > WiresLeft {
		return nil, errors.New("invalid rotation")
	}
	if (cfg.Rotation == WiresRight || cfg.Rotation == WiresLeft) && cfg.Width != cfg.Height {
		return nil, errors.New("quarter rotations need a square matrix")
	}
	max := cfg.MaxPixels
	if max == 0 {
		max = int(cfg.Width) * int(cfg.Height)
	}
	m := &Matrix{
		strip:  strip,
		w:      cfg.Width,
		h:      cfg.Height,
		rot:    cfg.Rotation,
		pix:    make([]color.RGBA, max),
		out:    make([]color.RGBA, max),
		n:      max,
		bright: 255,
	}
	m.Clear()
	return m, nil
}

func (m *Matrix) Size() (x, y int16) {
	return m.w, m.h
}

// SetPixel sets the pixel at x, y. Coordinates outside the matrix are ignored, which is what lets glyphs be drawn
// partly off screen.
func (m *Matrix) SetPixel(x, y int16, c color.RGBA) {
	if i, ok := m.Index(x, y); ok {
		m.Set(i, c)
	}
}

// Index maps a coordinate to its position in the chain. The chain runs down the first column, up the second and so
// on, as seen with the wires at the top.
func (m *Matrix) Index(x, y int16) (int, bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return 0, false
	}
	switch m.rot {
	case WiresRight:
		x, y = y, m.w-1-x
	case WiresBottom:
		x, y = m.w-1-x, m.h-1-y
	case WiresLeft:
		x, y = m.h-1-y, x
	}
	if x%2 == 1 {
		y = m.h - 1 - y
	}
	return int(x)*int(m.h) + int(y), true
}

// Display pushes the active pixels to the strip, scaled by the brightness.
func (m *Matrix) Display() error {
	scale := uint16(m.bright) + 1
	for i, c := range m.pix[:m.n] {
		m.out[i] = color.RGBA{
			R: uint8(uint16(c.R) * scale >> 8),
			G: uint8(uint16(c.G) * scale >> 8),
			B: uint8(uint16(c.B) * scale >> 8),
			A: 0xFF,
		}
	}
	return m.strip.WriteColors(m.out[:m.n])
}

// Len is the number of active pixels.
func (m *Matrix) Len() int {
	return m.n
}

// Max is the most pixels the buffer can drive.
func (m *Matrix) Max() int {
	return len(m.pix)
}

// SetLen changes the number of active pixels, clamped to [1, Max].
func (m *Matrix) SetLen(n int) {
	if n < 1 {
		n = 1
	}
	if n > len(m.pix) {
		n = len(m.pix)
	}
	m.n = n
}

func (m *Matrix) Clear() {
	for i := range m.pix {
		m.pix[i] = Off
	}
}

// Set sets pixel i of the chain. Pixels beyond the active length are ignored.
func (m *Matrix) Set(i int, c color.RGBA) {
	if i < 0 || i >= m.n {
		return
	}
	m.pix[i] = c
}

func (m *Matrix) At(i int) color.RGBA {
	if i < 0 || i >= len(m.pix) {
		return Off
	}
	return m.pix[i]
}

// Fill sets count pixels starting at first. A count of zero fills to the end of the active pixels.
func (m *Matrix) Fill(c color.RGBA, first, count int) {
	if first < 0 || first >= m.n {
		return
	}
	end := m.n
	if count > 0 && first+count < end {
		end = first + count
	}
	for i := first; i < end; i++ {
		m.pix[i] = c
	}
}

func (m *Matrix) SetBrightness(b uint8) {
	m.bright = b
}

func (m *Matrix) Brightness() uint8 {
	return m.bright
}
