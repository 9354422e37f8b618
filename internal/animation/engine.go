package animation

import (
	"errors"

	"neobadge/internal/sleep"
)

// Signal is the hand-off between the engine and the controller.
type Signal struct {
	// ResetRequested makes the active animation restart on its next frame. Set by the controller, cleared by the
	// engine when the animation has been reset.
	ResetRequested bool
	// Complete is set by the engine when the active animation ends its cycle, together with Sleep. Only the
	// controller clears it.
	Complete bool
	Sleep    sleep.Interval
}

// Take consumes a completed cycle.
func (s *Signal) Take() (sleep.Interval, bool) {
	if !s.Complete {
		return 0, false
	}
	s.Complete = false
	return s.Sleep, true
}

// Engine owns the animation table and runs the active entry.
type Engine struct {
	anims  []Animation
	active int
}

func NewEngine(anims []Animation) (*Engine, error) {
	if len(anims) == 0 {
		return nil, errors.New("no animations")
	}
	if len(anims) > 255 {
		return nil, errors.New("too many animations")
	}
	for _, a := range anims {
		if a == nil {
			return nil, errors.New("nil animation")
		}
	}
	return &Engine{anims: anims}, nil
}

func (e *Engine) Len() int {
	return len(e.anims)
}

func (e *Engine) Active() int {
	return e.active
}

func (e *Engine) Animation(i int) Animation {
	return e.anims[i]
}

// Select makes i the active animation. Out of range indexes select 0.
func (e *Engine) Select(i int) {
	if i < 0 || i >= len(e.anims) {
		i = 0
	}
	e.active = i
}

func (e *Engine) Next() {
	e.active = (e.active + 1) % len(e.anims)
}

func (e *Engine) Prev() {
	e.active = (e.active + len(e.anims) - 1) % len(e.anims)
}

// Render draws one frame of the active animation, restarting it first if a reset was requested. When the frame ends
// the cycle, the signal is marked complete with the animation's sleep request.
func (e *Engine) Render(c Canvas, now uint32, sig *Signal) {
	a := e.anims[e.active]
	if sig.ResetRequested {
		sig.ResetRequested = false
		a.Activate(c, now)
	}
	if !a.DrawFrame(c, now) && !sig.Complete {
		sig.Complete = true
		sig.Sleep = a.SleepAfter()
	}
}

// Shuffle picks a different animation at random and re-randomises every Shuffler with one coin flip.
func (e *Engine) Shuffle(r Rand) {
	if n := uint32(len(e.anims)); n > 1 {
		// pick among the others, then skip over the current one
		next := int(r.Below(n - 1))
		if next >= e.active {
			next++
		}
		e.active = next
	}
	flip := r.Below(2) == 1
	for _, a := range e.anims {
		if s, ok := a.(Shuffler); ok {
			s.Shuffle(flip)
		}
	}
}
