// Package sparkle lights one random pixel at a time in a random bright color.
package sparkle

import (
	"image/color"
	"time"

	"neobadge/internal/animation"
	"neobadge/internal/sleep"
)

const (
	Step   = 65 * time.Millisecond
	OnTime = 4 * time.Second

	// at least one channel of the color reaches this
	minBright = 130
)

type Anim struct {
	rnd animation.Rand

	start, last uint32
	pix         int
	c           color.RGBA
}

func New(rnd animation.Rand) *Anim {
	return &Anim{rnd: rnd}
}

func (a *Anim) Activate(_ animation.Canvas, now uint32) {
	a.start = now
	a.last = now
	a.pix = 0
	for {
		a.c = color.RGBA{
			R: uint8(a.rnd.Below(256)),
			G: uint8(a.rnd.Below(256)),
			B: uint8(a.rnd.Below(256)),
			A: 0xFF,
		}
		if a.c.R >= minBright || a.c.G >= minBright || a.c.B >= minBright {
			break
		}
	}
}

func (a *Anim) DrawFrame(c animation.Canvas, now uint32) bool {
	if animation.Elapsed(now, a.last) > uint32(Step/time.Millisecond) {
		a.last = now
		c.Clear()
		n := uint32(c.Len())
		next := 0
		if n > 1 {
			// any pixel but the last one lit
			next = int(a.rnd.Below(n - 1))
			if next >= a.pix {
				next++
			}
		}
		a.pix = next
		c.Set(a.pix, a.c)
	}
	return animation.Elapsed(now, a.start) <= uint32(OnTime/time.Millisecond)
}

func (a *Anim) SleepAfter() sleep.Interval {
	return sleep.Interval8s
}

// Color is the color picked for the current cycle.
func (a *Anim) Color() color.RGBA {
	return a.c
}
