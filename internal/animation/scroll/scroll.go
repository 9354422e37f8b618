// Package scroll scrolls a text message across the matrix one column at a time.
package scroll

import (
	"image/color"
	"time"

	"tinygo.org/x/tinyfont"

	"neobadge/internal/animation"
	"neobadge/internal/font"
	"neobadge/internal/sleep"
)

const Step = 200 * time.Millisecond

// Message is a message to scroll. A zero Color cycles through the color wheel.
type Message struct {
	Text  string
	Color color.RGBA
}

type Anim struct {
	msg  Message
	font tinyfont.Fonter

	last     uint32
	next     int
	in, out  byte
	xIn      int16
	xOut     int16
	finished bool
}

func New(msg Message, f tinyfont.Fonter) *Anim {
	return &Anim{msg: msg, font: f}
}

func (a *Anim) Activate(_ animation.Canvas, now uint32) {
	a.last = now
	a.next = 1
	a.in = a.char(0)
	a.out = ' '
	a.xIn = font.Size
	a.xOut = 0
	a.finished = false
}

func (a *Anim) char(i int) byte {
	if i >= len(a.msg.Text) {
		return 0
	}
	return a.msg.Text[i]
}

func (a *Anim) DrawFrame(c animation.Canvas, now uint32) bool {
	done := false
	if animation.Elapsed(now, a.last) >= uint32(Step/time.Millisecond) && !a.finished {
		a.last = now
		if a.xIn == 0 {
			// incoming character is fully on screen: it starts leaving and the next one enters
			a.out = a.in
			a.in = a.char(a.next)
			a.next++
			if a.in == 0 {
				a.finished = true
				done = true
			}
			a.xIn = font.Size + 1
			a.xOut = 0
		}
		a.xIn--
		a.xOut--
	}

	col := a.msg.Color
	if col == (color.RGBA{}) {
		col = animation.Wheel(now, 10)
	}
	c.Clear()
	font.Draw(c, a.font, a.in, col, a.xIn, 0)
	font.Draw(c, a.font, a.out, col, a.xOut, 0)
	return !done
}

func (a *Anim) SleepAfter() sleep.Interval {
	return sleep.Interval24s
}
