package sleep

import (
	"sync/atomic"
	"time"
)

// EdgeSleeper sleeps on a timer and wakes early when Notify is called. Notify is safe to call from a pin interrupt
// handler: it never blocks and never allocates.
type EdgeSleeper struct {
	edges chan struct{}
	timer *time.Timer
	drops uint32
}

func NewEdgeSleeper() *EdgeSleeper {
	t := time.NewTimer(time.Hour)
	t.Stop()
	return &EdgeSleeper{
		edges: make(chan struct{}, 1),
		timer: t,
	}
}

// Notify records a button edge.
func (s *EdgeSleeper) Notify() {
	select {
	case s.edges <- struct{}{}:
	default:
		// one pending edge is enough to wake
		atomic.AddUint32(&s.drops, 1)
	}
}

// Dropped returns how many edges were coalesced into an already pending one.
func (s *EdgeSleeper) Dropped() uint32 {
	return atomic.LoadUint32(&s.drops)
}

// Discard drops a pending edge. The main loop calls it right before sampling the buttons, so an edge that lands
// after the last sample is still pending when the badge goes to sleep and wakes it at once.
func (s *EdgeSleeper) Discard() {
	select {
	case <-s.edges:
	default:
	}
}

// Sleep implements Sleeper. A pending edge ends the sleep immediately.
func (s *EdgeSleeper) Sleep(hw Interval) WakeCause {
	if hw > Max {
		hw = Max
	}
	resetTimer(s.timer, hwDurations[hw])
	select {
	case <-s.timer.C:
		return TimerExpired
	case <-s.edges:
		if !s.timer.Stop() {
			drainTimer(s.timer)
		}
		return InputEdge
	}
}

// WaitEdge blocks until the next button edge with no timeout. A pending edge returns at once.
func (s *EdgeSleeper) WaitEdge() {
	<-s.edges
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		drainTimer(t)
	}
	t.Reset(d)
}

func drainTimer(t *time.Timer) {
	select {
	case <-t.C:
	default:
	}
}
