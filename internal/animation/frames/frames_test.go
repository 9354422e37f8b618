package frames

import (
	"image/color"
	"testing"
	"time"

	"neobadge/internal/font"
	"neobadge/internal/matrix"
)

type nopStrip struct{}

func (nopStrip) WriteColors([]color.RGBA) error { return nil }

func setup(t *testing.T) (*font.Font, *matrix.Matrix) {
	t.Helper()
	f, err := font.Load()
	if err != nil {
		t.Fatal(err)
	}
	c, _ := matrix.New(nopStrip{}, matrix.Config{Width: 5, Height: 5})
	return f, c
}

// runUntilDone drives a in 10ms ticks and returns when it ended, relative to start.
func runUntilDone(t *testing.T, a *Anim, c *matrix.Matrix, start uint32) uint32 {
	t.Helper()
	a.Activate(c, start)
	for now := start; now < start+60000; now += 10 {
		if !a.DrawFrame(c, now) {
			return now - start
		}
	}
	t.Fatal("never ended")
	return 0
}

func TestStaticRepeats(t *testing.T) {
	f, c := setup(t)
	a := New(Config{Step: 100 * time.Millisecond, Color: matrix.Teal, Frames: "jk", Repeat: 2}, f)
	if got := runUntilDone(t, a, c, 1000); got != 400 {
		t.Errorf("ended after %dms, want 400", got)
	}
}

func TestStaticDrawsCurrentFrame(t *testing.T) {
	f, c := setup(t)
	a := New(Config{Step: 100 * time.Millisecond, Color: matrix.Yellow, Frames: "-b", Repeat: 1}, f)
	a.Activate(c, 0)

	a.DrawFrame(c, 0)
	// '-' is the middle row
	for x := int16(0); x < 5; x++ {
		i, _ := c.Index(x, 2)
		if c.At(i) != matrix.Yellow {
			t.Fatalf("'-' missing at %d,2", x)
		}
	}
	i, _ := c.Index(2, 0)
	if c.At(i) != matrix.Off {
		t.Error("'-' drew outside its row")
	}

	a.DrawFrame(c, 100)
	// 'b' is the middle column
	if c.At(i) != matrix.Yellow {
		t.Error("second frame not drawn")
	}
}

func TestShiftLeavesMatrix(t *testing.T) {
	f, c := setup(t)
	cfg := Config{
		Step:      200 * time.Millisecond,
		Color:     matrix.Yellow,
		Frames:    "gh",
		Mode:      ModeShift,
		ShiftSync: 2,
		StartX:    -4,
		StepX:     1,
	}
	a := New(cfg, f)
	// nine shifts from -4 to 5, each two frames apart
	if got := runUntilDone(t, a, c, 0); got != 18*200 {
		t.Errorf("ended after %dms, want %d", got, 18*200)
	}
	if x, _ := a.Position(); x != 5 {
		t.Errorf("x = %d", x)
	}
}

func TestShuffleReversesDirection(t *testing.T) {
	f, c := setup(t)
	cfg := Config{
		Step:       250 * time.Millisecond,
		Color:      matrix.Teal,
		Frames:     "\"",
		Mode:       ModeShift,
		ShiftSync:  1,
		StartX:     -4,
		StepX:      1,
		Reversible: true,
	}
	a := New(cfg, f)
	a.Shuffle(true)
	a.Activate(c, 0)
	if x, _ := a.Position(); x != 4 {
		t.Fatalf("reversed start x = %d, want 4", x)
	}
	a.DrawFrame(c, 250)
	if x, _ := a.Position(); x != 3 {
		t.Errorf("reversed step x = %d, want 3", x)
	}

	// a second flip restores the original direction, a non-flip leaves it
	a.Shuffle(true)
	a.Shuffle(false)
	a.Activate(c, 0)
	if x, _ := a.Position(); x != -4 {
		t.Errorf("start x = %d, want -4", x)
	}
}

func TestShuffleKeepsFixedDirection(t *testing.T) {
	f, c := setup(t)
	a := New(Config{
		Step:      200 * time.Millisecond,
		Frames:    "gh",
		Mode:      ModeShift,
		ShiftSync: 2,
		StartX:    -4,
		StepX:     1,
	}, f)
	a.Shuffle(true)
	a.Activate(c, 0)
	if x, _ := a.Position(); x != -4 {
		t.Errorf("start x = %d, want -4", x)
	}
}

func TestShuffleAlternateSequence(t *testing.T) {
	f, c := setup(t)
	a := New(Config{Step: 250 * time.Millisecond, Frames: "b/-\\", Alt: "\\-/b", Repeat: 1}, f)
	a.Shuffle(true)
	a.Activate(c, 0)
	if a.frame() != '\\' {
		t.Errorf("alt first frame %q", a.frame())
	}
	a.Shuffle(false)
	a.Activate(c, 0)
	if a.frame() != 'b' {
		t.Errorf("first frame %q", a.frame())
	}
}

func TestWheelColorWhenUnset(t *testing.T) {
	f, c := setup(t)
	a := New(Config{Step: 100 * time.Millisecond, Frames: "h", Repeat: 1}, f)
	a.Activate(c, 0)
	a.DrawFrame(c, 50)
	i, _ := c.Index(2, 2)
	if c.At(i) == matrix.Off {
		t.Error("sprite not drawn")
	}
}
