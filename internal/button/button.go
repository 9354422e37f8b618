// Package button turns raw per-loop button samples into click, double-click, hold and long-hold events.
package button

import (
	"time"

	"neobadge/internal/sat"
)

type Event uint8

const (
	EventNone Event = iota
	EventClick
	EventDoubleClick
	EventHold
	EventLongHold
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventClick:
		return "click"
	case EventDoubleClick:
		return "double-click"
	case EventHold:
		return "hold"
	case EventLongHold:
		return "long-hold"
	default:
		return "INVALID"
	}
}

type Config struct {
	// Debounce is the minimum time between a release and the next press, and between a press and its release.
	Debounce time.Duration
	// DoubleClickGap is the longest a release may wait for a second press. Zero disables double-click detection and
	// clicks fire on release.
	DoubleClickGap time.Duration
	Hold           time.Duration
	// LongHold must be longer than Hold.
	LongHold time.Duration
}

func DefaultConfig() Config {
	return Config{
		Debounce:       20 * time.Millisecond,
		DoubleClickGap: 0,
		Hold:           time.Second,
		LongHold:       3 * time.Second,
	}
}

// Button is the debounce state for one physical button. The zero value is not usable; use New.
type Button struct {
	debounce, dcGap, hold, longHold uint32

	raw, prev    bool
	downAt, upAt uint32

	ignoreUp  bool
	singleOK  bool
	holdPast  bool
	longPast  bool
	dcWaiting bool
	dcOnUp    bool
}

func New(cfg Config) *Button {
	b := &Button{
		debounce: ms(cfg.Debounce),
		dcGap:    ms(cfg.DoubleClickGap),
		hold:     ms(cfg.Hold),
		longHold: ms(cfg.LongHold),
	}
	b.Reset()
	return b
}

func ms(d time.Duration) uint32 {
	return uint32(d / time.Millisecond)
}

// Reset returns the button to the released state. Called at boot and after every wake from sleep.
func (b *Button) Reset() {
	b.raw, b.prev = false, false
	b.downAt, b.upAt = 0, 0
	b.ignoreUp = false
	b.singleOK = true
	b.holdPast = false
	b.longPast = false
	b.dcWaiting = false
	b.dcOnUp = false
}

// Pressed reports the last raw sample.
func (b *Button) Pressed() bool {
	return b.raw
}

// Classify consumes one raw sample (true while pressed) taken at now, in milliseconds, and returns the event it
// completes, if any. It must be called once per loop iteration with a non-decreasing now; the counter may wrap.
func (b *Button) Classify(pressed bool, now uint32) Event {
	ev := EventNone
	b.raw = pressed

	switch {
	case pressed && !b.prev && sat.Since(now, b.upAt) > b.debounce:
		b.downAt = now
		b.ignoreUp = false
		b.singleOK = true
		b.holdPast = false
		b.longPast = false
		b.dcOnUp = sat.Since(now, b.upAt) < b.dcGap && !b.dcOnUp && b.dcWaiting
		b.dcWaiting = false

	case !pressed && b.prev && sat.Since(now, b.downAt) > b.debounce:
		if !b.ignoreUp {
			b.upAt = now
			if !b.dcOnUp {
				b.dcWaiting = true
			} else {
				ev = EventDoubleClick
				b.dcOnUp = false
				b.dcWaiting = false
				b.singleOK = false
			}
		}
	}

	if !pressed && sat.Since(now, b.upAt) >= b.dcGap && b.dcWaiting && !b.dcOnUp && b.singleOK && ev != EventDoubleClick {
		ev = EventClick
		b.dcWaiting = false
	}

	if pressed {
		held := sat.Since(now, b.downAt)
		if held >= b.hold && !b.holdPast {
			ev = EventHold
			b.ignoreUp = true
			b.dcOnUp = false
			b.dcWaiting = false
			b.holdPast = true
		} else if held >= b.longHold && b.holdPast && !b.longPast {
			ev = EventLongHold
			b.longPast = true
		}
	}

	b.prev = b.raw
	return ev
}
