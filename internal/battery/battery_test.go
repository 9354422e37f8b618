package battery

import (
	"testing"
)

type memLatch struct {
	dead   bool
	writes int
}

func (l *memLatch) BatteryDead() bool { return l.dead }

func (l *memLatch) SetBatteryDead(dead bool) {
	l.dead = dead
	l.writes++
}

func TestLevel(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		mv   uint16
		want uint8
	}{
		{0, 1},
		{2749, 1},
		{2750, 2},
		{2999, 2},
		{3000, 3},
		{3099, 3},
		{3100, 4},
		{3199, 4},
		{3200, 5},
		{0xFFFF, 5},
	}
	for _, tt := range tests {
		if got := cfg.Level(tt.mv); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.mv, got, tt.want)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	prev := cfg.Level(0)
	for mv := 1; mv <= 4000; mv++ {
		l := cfg.Level(uint16(mv))
		if l < prev {
			t.Fatalf("Level(%d) = %d < Level(%d) = %d", mv, l, mv-1, prev)
		}
		prev = l
	}
}

func TestSustainedLowVoltageShutsDown(t *testing.T) {
	l := &memLatch{}
	m := New(DefaultConfig(), l)

	shutdowns := 0
	for now := uint32(1000); now <= 4000; now += 10 {
		if m.Sample(2400, now) {
			shutdowns++
			if now <= 3000 {
				t.Errorf("shut down after only %dms", now-1000)
			}
			break
		}
	}
	if shutdowns != 1 {
		t.Fatalf("shutdowns = %d, want 1", shutdowns)
	}
	if !l.dead {
		t.Error("dead latch not set")
	}
}

func TestBriefDipDoesNotShutDown(t *testing.T) {
	l := &memLatch{}
	m := New(DefaultConfig(), l)
	now := uint32(1000)
	for cycle := 0; cycle < 10; cycle++ {
		for i := 0; i < 150; i++ {
			if m.Sample(2400, now) {
				t.Fatalf("shut down at %d", now)
			}
			now += 10
		}
		// recovering above the discharge threshold resets the accumulator
		m.Sample(2600, now)
		if m.LowFor() != 0 {
			t.Fatalf("accumulator not reset: %v", m.LowFor())
		}
		now += 10
	}
	if l.dead {
		t.Error("dead latch set")
	}
}

func TestDeadLatchHysteresis(t *testing.T) {
	l := &memLatch{dead: true}
	m := New(DefaultConfig(), l)

	// between the discharge and recovery thresholds the latch holds and every sample shuts down
	for i, mv := range []uint16{2600, 2999, 2700, 2900, 2501} {
		if !m.Sample(mv, uint32(1000+i*10)) {
			t.Errorf("%dmV with dead latch did not shut down", mv)
		}
		if !l.dead {
			t.Fatalf("%dmV cleared the latch", mv)
		}
	}

	if m.Sample(3000, 2000) {
		t.Error("recovery voltage still shut down")
	}
	if l.dead {
		t.Error("recovery voltage did not clear the latch")
	}
}

func TestSampleAcrossClockWrap(t *testing.T) {
	l := &memLatch{}
	m := New(DefaultConfig(), l)
	now := uint32(0xFFFFFF00)
	for i := 0; i < 100; i++ {
		if m.Sample(2400, now) {
			t.Fatalf("shut down after %d samples", i)
		}
		now += 10
	}
	if got := m.LowFor(); got.Milliseconds() != 990 {
		t.Errorf("LowFor = %v, want 990ms", got)
	}
}

func TestSleepIsNotOnTime(t *testing.T) {
	l := &memLatch{}
	m := New(DefaultConfig(), l)
	now := uint32(1000)
	for i := 0; i < 100; i++ {
		if m.Sample(2400, now) {
			t.Fatalf("shut down at %d", now)
		}
		now += 10
	}

	m.Wake()
	now += 24000
	if m.Sample(2400, now) {
		t.Fatal("time asleep counted towards the budget")
	}
	if got := m.LowFor(); got.Milliseconds() != 990 {
		t.Fatalf("LowFor = %v after wake, want 990ms kept", got)
	}

	// the rest of the budget still runs out while awake
	awake := uint32(0)
	for !m.Sample(2400, now) {
		now += 10
		awake += 10
		if awake > 2000 {
			t.Fatal("never shut down")
		}
	}
	if awake < 1000 || awake > 1030 {
		t.Errorf("shut down after %dms awake, want about 1010ms", awake)
	}
}
