// Package frames plays sprite sequences built from glyphs, either in place or moving across the matrix.
package frames

import (
	"image/color"
	"time"

	"tinygo.org/x/tinyfont"

	"neobadge/internal/animation"
	"neobadge/internal/font"
	"neobadge/internal/sleep"
)

type Mode uint8

const (
	// ModeStatic plays the sequence in place Repeat times.
	ModeStatic Mode = iota
	// ModeShift moves the sprite by StepX, StepY every ShiftSync frames until it leaves the matrix.
	ModeShift
)

type Config struct {
	Step time.Duration
	// Color of the sprite. The zero value cycles through the color wheel.
	Color color.RGBA
	// Frames are the glyphs of the sequence.
	Frames string
	// Alt, if set, is used instead of Frames on shuffles with the coin flipped.
	Alt  string
	Mode Mode

	Repeat uint8

	ShiftSync    uint8
	StartX       int8
	StartY       int8
	StepX, StepY int8
	// Reversible sprites have their horizontal direction reversed on shuffles with the coin flipped.
	Reversible bool
}

type Anim struct {
	cfg    Config
	font   tinyfont.Fonter
	frames string
	dir    int8

	last     uint32
	idx      int
	sync     uint8
	repeats  uint8
	x, y     int8
	finished bool
}

func New(cfg Config, f tinyfont.Fonter) *Anim {
	return &Anim{
		cfg:    cfg,
		font:   f,
		frames: cfg.Frames,
		dir:    1,
	}
}

func (a *Anim) Activate(_ animation.Canvas, now uint32) {
	a.last = now
	a.idx = 0
	a.sync = 0
	a.repeats = 0
	a.finished = false
	if a.cfg.Mode == ModeShift {
		a.x, a.y = a.cfg.StartX*a.dir, a.cfg.StartY
	} else {
		a.x, a.y = 0, 0
	}
}

// Shuffle picks the alternate sequence on a flip, and reverses the horizontal direction of reversible sprites.
func (a *Anim) Shuffle(flip bool) {
	if a.cfg.Alt != "" {
		if flip {
			a.frames = a.cfg.Alt
		} else {
			a.frames = a.cfg.Frames
		}
	}
	if a.cfg.Reversible && flip {
		a.dir = -a.dir
	}
}

func (a *Anim) frame() byte {
	if a.idx >= len(a.frames) {
		return 0
	}
	return a.frames[a.idx]
}

func (a *Anim) DrawFrame(c animation.Canvas, now uint32) bool {
	done := false
	if !a.finished && animation.Elapsed(now, a.last) >= uint32(a.cfg.Step/time.Millisecond) {
		a.last = now
		a.idx++
		if a.idx >= len(a.frames) {
			a.repeats++
			if a.cfg.Mode == ModeStatic && a.repeats >= a.cfg.Repeat {
				done = true
			} else {
				a.idx = 0
			}
		}

		if a.cfg.Mode == ModeShift {
			a.sync++
			if a.sync >= a.cfg.ShiftSync {
				a.sync = 0
				a.x += a.cfg.StepX * a.dir
				a.y += a.cfg.StepY
			}
			if a.x <= -font.Size || a.x >= font.Size || a.y <= -font.Size || a.y >= font.Size {
				done = true
			}
		}
		a.finished = done
	}

	col := a.cfg.Color
	if col == (color.RGBA{}) {
		col = animation.Wheel(now, 10)
	}
	c.Clear()
	font.Draw(c, a.font, a.frame(), col, int16(a.x), int16(a.y))
	return !done
}

func (a *Anim) SleepAfter() sleep.Interval {
	return sleep.Interval8s
}

// Position is the sprite's current offset.
func (a *Anim) Position() (x, y int8) {
	return a.x, a.y
}
