package button

import (
	"testing"
	"time"
)

type sample struct {
	at      uint32
	pressed bool
}

type firing struct {
	at uint32
	ev Event
}

// drive feeds the button a sample every 10ms from the first to the last sample time, holding each level until
// the next sample changes it, and returns all non-None events.
func drive(b *Button, samples []sample) []firing {
	var out []firing
	level := false
	next := 0
	start, end := samples[0].at, samples[len(samples)-1].at
	for now := start; ; now += 10 {
		for next < len(samples) && samples[next].at == now {
			level = samples[next].pressed
			next++
		}
		if ev := b.Classify(level, now); ev != EventNone {
			out = append(out, firing{now, ev})
		}
		if now == end {
			break
		}
	}
	return out
}

func withGap(gap time.Duration) Config {
	cfg := DefaultConfig()
	cfg.DoubleClickGap = gap
	return cfg
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		samples []sample
		want    []firing
	}{
		{
			name:    "click fires on release without double-click gap",
			cfg:     DefaultConfig(),
			samples: []sample{{1000, true}, {1100, false}, {1500, false}},
			want:    []firing{{1100, EventClick}},
		},
		{
			name:    "click waits out the double-click gap",
			cfg:     withGap(250 * time.Millisecond),
			samples: []sample{{1000, true}, {1100, false}, {1500, false}},
			want:    []firing{{1350, EventClick}},
		},
		{
			name:    "double-click suppresses the pending click",
			cfg:     withGap(250 * time.Millisecond),
			samples: []sample{{1000, true}, {1100, false}, {1200, true}, {1300, false}, {2000, false}},
			want:    []firing{{1300, EventDoubleClick}},
		},
		{
			name:    "second press after the gap is two clicks",
			cfg:     withGap(250 * time.Millisecond),
			samples: []sample{{1000, true}, {1100, false}, {1400, true}, {1500, false}, {2000, false}},
			want:    []firing{{1350, EventClick}, {1750, EventClick}},
		},
		{
			name:    "hold and long hold fire once and the release is ignored",
			cfg:     DefaultConfig(),
			samples: []sample{{1000, true}, {5000, false}, {6000, false}},
			want:    []firing{{2000, EventHold}, {4000, EventLongHold}},
		},
		{
			name:    "hold without long hold",
			cfg:     DefaultConfig(),
			samples: []sample{{1000, true}, {2500, false}, {3000, false}},
			want:    []firing{{2000, EventHold}},
		},
		{
			name:    "press shorter than debounce is ignored",
			cfg:     DefaultConfig(),
			samples: []sample{{1000, true}, {1010, false}, {1500, false}},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drive(New(tt.cfg), tt.samples)
			if len(got) != len(tt.want) {
				t.Fatalf("got events %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d: got %v@%d, want %v@%d", i, got[i].ev, got[i].at, tt.want[i].ev, tt.want[i].at)
				}
			}
		})
	}
}

func TestClassifyAcrossClockWrap(t *testing.T) {
	b := New(DefaultConfig())
	if ev := b.Classify(true, 0xFFFFFFC0); ev != EventNone {
		t.Fatalf("press: %v", ev)
	}
	if ev := b.Classify(false, 0x40); ev != EventClick {
		t.Errorf("release across wrap: got %v, want click", ev)
	}
}

func TestReset(t *testing.T) {
	b := New(withGap(250 * time.Millisecond))
	b.Classify(true, 1000)
	b.Classify(false, 1100)
	b.Reset()
	if b.Pressed() {
		t.Error("pressed after reset")
	}
	// the click pending before the reset must not fire
	for now := uint32(1110); now < 2000; now += 10 {
		if ev := b.Classify(false, now); ev != EventNone {
			t.Fatalf("got %v at %d after reset", ev, now)
		}
	}
}

func TestEventString(t *testing.T) {
	if EventLongHold.String() != "long-hold" {
		t.Error(EventLongHold.String())
	}
	if Event(99).String() != "INVALID" {
		t.Error(Event(99).String())
	}
}
