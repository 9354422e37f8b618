package animation

import (
	"image/color"

	"tinygo.org/x/drivers"

	"neobadge/internal/matrix"
	"neobadge/internal/sleep"
)

// Canvas is the framebuffer animations draw on. Pixels are addressed either by position in the LED chain or by x/y
// through drivers.Displayer.
type Canvas interface {
	drivers.Displayer
	// Len is the number of active pixels in the chain.
	Len() int
	Clear()
	Set(i int, c color.RGBA)
	// Fill sets count pixels from first; a count of zero fills to the end.
	Fill(c color.RGBA, first, count int)
}

type Animation interface {
	// Activate is called when the animation is being started on the display, and again every time it is restarted.
	// All per-cycle state must be reset here.
	Activate(c Canvas, now uint32)
	// DrawFrame draws the frame for now (milliseconds, wrapping) into c.
	// Returns whether the animation should continue; false ends the cycle.
	DrawFrame(c Canvas, now uint32) bool
	// SleepAfter is how long the badge should power down after a cycle ends.
	SleepAfter() sleep.Interval
}

// Shuffler is implemented by animations with parameters that are re-randomised between shuffled cycles. All
// shufflers receive the same coin flip.
type Shuffler interface {
	Shuffle(flip bool)
}

// Rand is the random source animations draw from.
type Rand interface {
	Below(n uint32) uint32
}

// Elapsed returns the milliseconds from then to now on the wrapping clock.
func Elapsed(now, then uint32) uint32 {
	return now - then
}

// Wheel is the gamma-corrected color wheel, advancing rate hue steps per millisecond.
func Wheel(now uint32, rate uint32) color.RGBA {
	return matrix.Gamma(matrix.HSV(uint16(now * rate)))
}

// Phase is the 16-bit time base sweeps are computed from, running backwards when reverse is set.
func Phase(now uint32, reverse bool) uint16 {
	t := uint16(now)
	if reverse {
		t = -t
	}
	return t
}
