// Package battlevel fills a battery icon up to the current charge level.
package battlevel

import (
	"image/color"
	"time"

	"tinygo.org/x/tinyfont"

	"neobadge/internal/animation"
	"neobadge/internal/font"
	"neobadge/internal/matrix"
	"neobadge/internal/sleep"
)

const Step = 400 * time.Millisecond

// Icon glyphs, indexed by level. Level 0 is the dead battery.
const Icons = "(#$%&'"

var colors = [...]color.RGBA{matrix.Red, matrix.Red, matrix.Yellow, matrix.Yellow, matrix.Green, matrix.Green}

// Icon returns the glyph and color for a level from 0 (dead) to 5 (full).
func Icon(level uint8) (byte, color.RGBA) {
	if int(level) >= len(Icons) {
		level = uint8(len(Icons) - 1)
	}
	return Icons[level], colors[level]
}

type Anim struct {
	level func() uint8
	font  tinyfont.Fonter

	last   uint32
	target uint8
	shown  uint8
}

// New creates the animation. level is sampled once per cycle and returns 1 through 5.
func New(level func() uint8, f tinyfont.Fonter) *Anim {
	return &Anim{level: level, font: f}
}

func (a *Anim) Activate(_ animation.Canvas, now uint32) {
	a.last = now
	a.target = a.level()
	if a.target < 1 {
		a.target = 1
	}
	a.shown = 1
}

func (a *Anim) DrawFrame(c animation.Canvas, now uint32) bool {
	done := false
	if animation.Elapsed(now, a.last) > uint32(Step/time.Millisecond) {
		a.last = now
		if a.shown < a.target {
			a.shown++
		} else {
			done = true
		}
	}

	c.Clear()
	ch, col := Icon(a.shown)
	font.Draw(c, a.font, ch, col, 0, 0)
	return !done
}

func (a *Anim) SleepAfter() sleep.Interval {
	return sleep.Interval8s
}
