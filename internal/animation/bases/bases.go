// Package bases steps through an RNA base sequence, showing one base per second either as a colored quarter of the
// chain or as its letter.
package bases

import (
	"image/color"
	"time"

	"tinygo.org/x/tinyfont"

	"neobadge/internal/animation"
	"neobadge/internal/font"
	"neobadge/internal/matrix"
	"neobadge/internal/sleep"
)

const (
	Step = time.Second
	// StepsPerCycle is how many bases are shown before the cycle ends.
	StepsPerCycle = 4
)

// CoV2 is the start of the SARS-CoV-2 genome, 5' end first.
const CoV2 = "AUUAAAGGUUUAUACCUUCCCAGGUAACAAACCAACCAACUUUCGAUCUCUUGUAGAUCUGUUC" +
	"UCUAAACGAACUUUAAAAUCUGUGUGGCUGUCACUCGGCUGCAUGCUUAGUGCACUCACGCAGU" +
	"AUAAUUAAUAACUAAUUACUGUCGUUGACAGGACACGAGUAACUCGUCUAUCUUCUGCAGGCUG" +
	"CUUACGGUUUCGUCCGUGUUGCAGCCGAUCAUCAGCACAUCUAGGUUUCGUCCGGGUGUGACCG" +
	"AAAGGUAAGAUGGAGAGCCUUGUCCCUGGUUUCAACGAGAAAACACACGUCCAACUCAGUUUGC"

// Sequence is a base sequence and a read position that survives animation resets, so every cycle carries on where
// the last one stopped. Several animations may share one Sequence.
type Sequence struct {
	bases string
	pos   int
}

func NewSequence(bases string) *Sequence {
	return &Sequence{bases: bases}
}

func (s *Sequence) Current() byte {
	if len(s.bases) == 0 {
		return 0
	}
	return s.bases[s.pos]
}

func (s *Sequence) Advance() {
	if len(s.bases) == 0 {
		return
	}
	s.pos = (s.pos + 1) % len(s.bases)
}

func (s *Sequence) Pos() int {
	return s.pos
}

type Style uint8

const (
	// StyleQuarter lights one quarter of the chain per base.
	StyleQuarter Style = iota
	// StyleLetter draws the base's letter.
	StyleLetter
)

type Anim struct {
	seq   *Sequence
	style Style
	font  tinyfont.Fonter

	last  uint32
	steps uint8
}

func New(seq *Sequence, style Style, f tinyfont.Fonter) *Anim {
	return &Anim{seq: seq, style: style, font: f}
}

func (a *Anim) Activate(_ animation.Canvas, now uint32) {
	a.last = now
	a.steps = 0
}

func (a *Anim) DrawFrame(c animation.Canvas, now uint32) bool {
	step := uint32(Step / time.Millisecond)
	elapsed := animation.Elapsed(now, a.last)

	// one off-on-off pulse per step
	cycle := uint8(elapsed * 255 / step)
	v := matrix.Gamma8(matrix.Sine8(cycle - 64))

	c.Clear()
	q := c.Len() / 4
	base := a.seq.Current()
	var col color.RGBA
	first, count := 0, q
	switch base {
	case 'A':
		col = color.RGBA{G: v, A: 0xFF}
	case 'C':
		col = color.RGBA{B: v, A: 0xFF}
		first = q
	case 'G':
		col = color.RGBA{R: v, G: v, A: 0xFF}
		first = 2 * q
	case 'U', 'T':
		col = color.RGBA{R: v, A: 0xFF}
		first, count = 3*q, 0
	}
	if col != (color.RGBA{}) {
		if a.style == StyleQuarter {
			c.Fill(col, first, count)
		} else {
			font.Draw(c, a.font, base, col, 0, 0)
		}
	}

	if elapsed > step {
		a.seq.Advance()
		a.last = now
		a.steps++
		if a.steps == StepsPerCycle {
			return false
		}
	}
	return true
}

func (a *Anim) SleepAfter() sleep.Interval {
	return sleep.Interval8s
}
