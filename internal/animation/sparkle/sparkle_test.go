package sparkle

import (
	"image/color"
	"testing"

	"neobadge/internal/matrix"
	"neobadge/internal/prng"
)

type nopStrip struct{}

func (nopStrip) WriteColors([]color.RGBA) error { return nil }

func lit(c *matrix.Matrix) []int {
	var out []int
	for i := 0; i < c.Len(); i++ {
		if c.At(i) != matrix.Off {
			out = append(out, i)
		}
	}
	return out
}

func TestSparkle(t *testing.T) {
	c, _ := matrix.New(nopStrip{}, matrix.Config{Width: 5, Height: 5})
	a := New(prng.New(7))
	a.Activate(c, 0)

	col := a.Color()
	if col.R < minBright && col.G < minBright && col.B < minBright {
		t.Fatalf("dim color %v", col)
	}

	prev := -1
	steps := 0
	for now := uint32(0); now <= 4000; now += 5 {
		if !a.DrawFrame(c, now) {
			t.Fatalf("ended early at %d", now)
		}
		l := lit(c)
		if steps == 0 && len(l) == 0 {
			continue
		}
		if len(l) != 1 {
			t.Fatalf("at %d lit %v, want exactly one", now, l)
		}
		if l[0] != prev {
			if c.At(l[0]) != col {
				t.Fatalf("pixel color %v, want %v", c.At(l[0]), col)
			}
			prev = l[0]
			steps++
		}
	}
	if steps < 50 {
		t.Errorf("only %d steps in 4s", steps)
	}
	if a.DrawFrame(c, 4001) {
		t.Error("did not end after the on-time")
	}
}

func TestSinglePixel(t *testing.T) {
	c, _ := matrix.New(nopStrip{}, matrix.Config{Width: 5, Height: 5})
	c.SetLen(1)
	a := New(prng.New(7))
	a.Activate(c, 0)
	a.DrawFrame(c, 100)
	if got := lit(c); len(got) != 1 || got[0] != 0 {
		t.Errorf("lit %v", got)
	}
}
