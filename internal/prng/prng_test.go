package prng

import (
	"testing"
)

func TestZeroSeedKeepsState(t *testing.T) {
	r := New(0)
	if r.State() != DefaultSeed {
		t.Fatalf("New(0) state = %#x, want default", r.State())
	}
	r.Seed(1234)
	r.Seed(0)
	if r.State() != 1234 {
		t.Errorf("Seed(0) changed state to %#x", r.State())
	}
}

func TestNextStep(t *testing.T) {
	r := New(2)
	if got := r.Next(); got != 1 {
		t.Errorf("even state: Next() = %#x, want 1", got)
	}
	// odd state shifts a one out and applies the taps
	if got := r.Next(); got != Taps {
		t.Errorf("odd state: Next() = %#x, want %#x", got, Taps)
	}
}

func TestNeverZero(t *testing.T) {
	r := New(1)
	for i := 0; i < 200000; i++ {
		if r.Next() == 0 {
			t.Fatalf("state reached zero after %d steps", i)
		}
	}
}

func TestReseedReproduces(t *testing.T) {
	a := New(0xC0FFEE)
	var first [64]uint32
	for i := range first {
		first[i] = a.Next()
	}
	a.Seed(0xC0FFEE)
	for i := range first {
		if got := a.Next(); got != first[i] {
			t.Fatalf("step %d: %#x != %#x", i, got, first[i])
		}
	}
}

func TestNoShortCycle(t *testing.T) {
	r := New(DefaultSeed)
	for i := 0; i < 1<<20; i++ {
		if r.Next() == DefaultSeed {
			t.Fatalf("returned to seed after %d steps", i+1)
		}
	}
}

func TestBelow(t *testing.T) {
	r := New(42)
	if got := r.Below(0); got != 0 {
		t.Errorf("Below(0) = %d", got)
	}
	for _, n := range []uint32{1, 2, 3, 17, 25, 1000} {
		for i := 0; i < 1000; i++ {
			if got := r.Below(n); got >= n {
				t.Fatalf("Below(%d) = %d", n, got)
			}
		}
	}
}

func TestRange(t *testing.T) {
	r := New(42)
	if got := r.Range(7, 7); got != 7 {
		t.Errorf("Range(7, 7) = %d", got)
	}
	if got := r.Range(9, 3); got != 9 {
		t.Errorf("Range(9, 3) = %d", got)
	}
	for i := 0; i < 1000; i++ {
		if got := r.Range(130, 256); got < 130 || got >= 256 {
			t.Fatalf("Range(130, 256) = %d", got)
		}
	}
}

func TestMix(t *testing.T) {
	samples := []uint16{1, 0, 1, 1}
	i := 0
	got := Mix(0xF0, 4, func() uint16 {
		s := samples[i]
		i++
		return s | 0x2 // only the low bit counts
	})
	if want := uint32(0xF0 ^ 0xB); got != want {
		t.Errorf("Mix = %#x, want %#x", got, want)
	}
}
