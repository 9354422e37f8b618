// Package sleep models power-down intervals. The hardware can only sleep for up to Max at a time; longer requests
// are realised by chaining several maximum-length intervals, and a button edge cancels the rest of the chain.
package sleep

import (
	"time"
)

// Interval is a power-down duration class.
type Interval uint8

const (
	Interval16ms Interval = iota
	Interval32ms
	Interval64ms
	Interval125ms
	Interval250ms
	Interval500ms
	Interval1s
	Interval2s
	Interval4s
	Interval8s
	Interval16s
	Interval24s
	Interval32s
	Interval40s
	Interval48s
	Interval56s
)

// Max is the longest interval the hardware timer supports in one sleep.
const Max = Interval8s

var hwDurations = [...]time.Duration{
	16 * time.Millisecond,
	32 * time.Millisecond,
	64 * time.Millisecond,
	125 * time.Millisecond,
	250 * time.Millisecond,
	500 * time.Millisecond,
	time.Second,
	2 * time.Second,
	4 * time.Second,
	8 * time.Second,
}

// Valid reports whether i is a known class.
func (i Interval) Valid() bool {
	return i <= Interval56s
}

// Split returns the hardware interval to sleep for and how many times it must be repeated in total.
func (i Interval) Split() (hw Interval, times uint8) {
	if i <= Max {
		return i, 1
	}
	if !i.Valid() {
		i = Interval56s
	}
	return Max, uint8(i-Max) + 1
}

// Duration is the total requested duration.
func (i Interval) Duration() time.Duration {
	hw, n := i.Split()
	return hwDurations[hw] * time.Duration(n)
}

func (i Interval) String() string {
	if !i.Valid() {
		return "INVALID"
	}
	return i.Duration().String()
}

type WakeCause uint8

const (
	TimerExpired WakeCause = iota
	InputEdge
)

func (w WakeCause) String() string {
	switch w {
	case TimerExpired:
		return "timer"
	case InputEdge:
		return "input"
	default:
		return "INVALID"
	}
}

// Sleeper powers the device down for one hardware interval (never longer than Max) and reports why it woke.
type Sleeper interface {
	Sleep(hw Interval) WakeCause
}

// Discard drops button edges s has buffered, if it buffers any.
func Discard(s Sleeper) {
	if d, ok := s.(interface{ Discard() }); ok {
		d.Discard()
	}
}

// Chain sleeps for the whole of i, re-entering s as many times as needed. It returns early with InputEdge as soon as
// any single sleep is ended by a button edge. slept is the number of hardware intervals entered.
func Chain(s Sleeper, i Interval) (cause WakeCause, slept uint8) {
	hw, remaining := i.Split()
	for remaining > 0 {
		cause = s.Sleep(hw)
		slept++
		if cause == InputEdge {
			return cause, slept
		}
		remaining--
	}
	return TimerExpired, slept
}
