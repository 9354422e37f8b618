// Package sweep has the time-modulated full-frame animations: every pixel's color is a function of its index and
// the time, and the pattern runs forwards or backwards for a fixed on-time.
package sweep

import (
	"image/color"
	"time"

	"neobadge/internal/animation"
	"neobadge/internal/matrix"
	"neobadge/internal/sleep"
)

// Pattern returns the color of pixel i of n at time base t.
type Pattern func(t uint16, i, n int) color.RGBA

const OnTime = 6 * time.Second

type Anim struct {
	pattern Pattern
	onTime  uint32
	rnd     animation.Rand

	start   uint32
	reverse bool
}

func New(p Pattern, rnd animation.Rand) *Anim {
	return &Anim{
		pattern: p,
		onTime:  uint32(OnTime / time.Millisecond),
		rnd:     rnd,
	}
}

func (a *Anim) Activate(_ animation.Canvas, now uint32) {
	a.start = now
	a.reverse = a.rnd.Below(2) == 1
}

func (a *Anim) DrawFrame(c animation.Canvas, now uint32) bool {
	t := animation.Phase(now, a.reverse)
	n := c.Len()
	for i := 0; i < n; i++ {
		c.Set(i, a.pattern(t, i, n))
	}
	return animation.Elapsed(now, a.start) <= a.onTime
}

func (a *Anim) SleepAfter() sleep.Interval {
	return sleep.Interval8s
}

// Primaries splits the chain into red, green and blue thirds that rotate one pixel every 100ms.
func Primaries(t uint16, i, n int) color.RGBA {
	idx := (int(t/100) + i) % n
	switch {
	case idx < n/3:
		return matrix.Red
	case idx < 2*n/3:
		return matrix.Green
	default:
		return matrix.Blue
	}
}

// ColorWheel spreads one turn of the gamma-corrected hue wheel over the chain.
func ColorWheel(t uint16, i, n int) color.RGBA {
	hue := uint16(uint32(t)*50 + uint32(i)*65536/uint32(n))
	return matrix.Gamma(matrix.HSV(hue))
}

// Half lights the first half of a rotating window in red.
func Half(t uint16, i, n int) color.RGBA {
	v := uint8(int(t/4) + i*256/n)
	return color.RGBA{R: (v >> 7) * 0xFF, A: 0xFF}
}

// Marquee alternates lit and dark quarters in green.
func Marquee(t uint16, i, n int) color.RGBA {
	v := uint8(int(t/4) + i*256/n)
	return color.RGBA{G: (v >> 6 & 1) * 0xFF, A: 0xFF}
}

// Sine runs two periods of a gamma-corrected sine wave across the chain in green.
func Sine(t uint16, i, n int) color.RGBA {
	v := uint8(int(t/4) + i*512/n)
	return color.RGBA{G: matrix.Gamma8(matrix.Sine8(v)), A: 0xFF}
}
