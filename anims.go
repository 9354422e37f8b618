package neobadge

import (
	"time"

	"tinygo.org/x/tinyfont"

	"neobadge/internal/animation"
	"neobadge/internal/animation/bases"
	"neobadge/internal/animation/battlevel"
	"neobadge/internal/animation/frames"
	"neobadge/internal/animation/scroll"
	"neobadge/internal/animation/sparkle"
	"neobadge/internal/animation/sweep"
	"neobadge/internal/matrix"
)

// AnimationID names an animation that can be placed in the animation table.
type AnimationID uint8

const (
	AnimPrimaries AnimationID = iota
	AnimColorWheel
	AnimHalf
	AnimSparkle
	AnimMarquee
	AnimSine
	AnimCoVQuarter
	AnimCoVLetter
	AnimMessage1
	AnimMessage2
	AnimMessage3
	AnimMessage4
	AnimPacman
	AnimGhost
	AnimStarburst
	AnimFrog
	AnimTurbine
	AnimSpinner
	AnimDNA
	AnimSnow
	AnimField
	AnimBall
	AnimBatteryLevel

	animationIDCount
)

var animationNames = [...]string{
	AnimPrimaries:    "primaries",
	AnimColorWheel:   "colorwheel",
	AnimHalf:         "half",
	AnimSparkle:      "sparkle",
	AnimMarquee:      "marquee",
	AnimSine:         "sine",
	AnimCoVQuarter:   "cov quarter",
	AnimCoVLetter:    "cov letter",
	AnimMessage1:     "message 1",
	AnimMessage2:     "message 2",
	AnimMessage3:     "message 3",
	AnimMessage4:     "message 4",
	AnimPacman:       "pacman",
	AnimGhost:        "ghost",
	AnimStarburst:    "starburst",
	AnimFrog:         "frog",
	AnimTurbine:      "turbine",
	AnimSpinner:      "spinner",
	AnimDNA:          "dna",
	AnimSnow:         "snow",
	AnimField:        "field",
	AnimBall:         "ball",
	AnimBatteryLevel: "battery level",
}

func (id AnimationID) Valid() bool {
	return id < animationIDCount
}

func (id AnimationID) String() string {
	if !id.Valid() {
		return "INVALID"
	}
	return animationNames[id]
}

// DefaultAnimations is the stock animation table.
func DefaultAnimations() []AnimationID {
	return []AnimationID{
		AnimPrimaries, AnimColorWheel,
		AnimSparkle,
		AnimMessage1, AnimMessage2, AnimMessage3, AnimMessage4,
		AnimPacman, AnimGhost, AnimStarburst, AnimFrog, AnimTurbine,
		AnimSpinner, AnimDNA, AnimSnow, AnimField, AnimBall,
		AnimBatteryLevel,
	}
}

// DefaultMessages are the stock message texts. 'u' is past the end of the font and scrolls as a blank.
func DefaultMessages() [4]scroll.Message {
	return [4]scroll.Message{
		{Text: "NEOBADGE ", Color: matrix.Purple},
		{Text: "MERRY XMAS! "},
		{Text: "HAPPY NEW YEAR! "},
		{Text: "u 4 8 15 16 23 42 ", Color: matrix.Green},
	}
}

var sprites = map[AnimationID]frames.Config{
	AnimPacman: {
		Step:      200 * time.Millisecond,
		Color:     matrix.Yellow,
		Frames:    "gh",
		Mode:      frames.ModeShift,
		ShiftSync: 2,
		StartX:    -4,
		StepX:     1,
	},
	AnimGhost: {
		Step:       250 * time.Millisecond,
		Color:      matrix.Teal,
		Frames:     "\"",
		Mode:       frames.ModeShift,
		ShiftSync:  1,
		StartX:     -4,
		StepX:      1,
		Reversible: true,
	},
	AnimStarburst: {
		Step:   100 * time.Millisecond,
		Frames: "jklmnopq",
		Repeat: 1,
	},
	AnimFrog: {
		Step:       250 * time.Millisecond,
		Color:      matrix.Green,
		Frames:     "rs",
		Mode:       frames.ModeShift,
		ShiftSync:  1,
		StartX:     -4,
		StepX:      1,
		Reversible: true,
	},
	AnimTurbine: {
		Step:   250 * time.Millisecond,
		Frames: "`a",
		Repeat: 7,
	},
	AnimSpinner: {
		Step:   250 * time.Millisecond,
		Frames: "b/-\\",
		Alt:    "\\-/b",
		Repeat: 7,
	},
	AnimDNA: {
		Step:   250 * time.Millisecond,
		Frames: "ef",
		Repeat: 6,
	},
	AnimSnow: {
		Step:   300 * time.Millisecond,
		Color:  matrix.Teal,
		Frames: ")*+,.",
		Repeat: 4,
	},
	AnimField: {
		Step:   400 * time.Millisecond,
		Frames: ":@=[=;",
		Repeat: 5,
	},
	AnimBall: {
		Step:   150 * time.Millisecond,
		Color:  matrix.Yellow,
		Frames: "]_cdcit",
		Alt:    "ticdc_]",
		Repeat: 1,
	},
}

// buildAnimations creates one animation per table entry. Entries with the same ID get separate state, except the
// two CoV animations which share one read position.
func (b *Badge) buildAnimations(f tinyfont.Fonter) []animation.Animation {
	seq := bases.NewSequence(bases.CoV2)
	anims := make([]animation.Animation, len(b.cfg.Animations))
	for i, id := range b.cfg.Animations {
		switch id {
		case AnimPrimaries:
			anims[i] = sweep.New(sweep.Primaries, b.rng)
		case AnimColorWheel:
			anims[i] = sweep.New(sweep.ColorWheel, b.rng)
		case AnimHalf:
			anims[i] = sweep.New(sweep.Half, b.rng)
		case AnimMarquee:
			anims[i] = sweep.New(sweep.Marquee, b.rng)
		case AnimSine:
			anims[i] = sweep.New(sweep.Sine, b.rng)
		case AnimSparkle:
			anims[i] = sparkle.New(b.rng)
		case AnimCoVQuarter:
			anims[i] = bases.New(seq, bases.StyleQuarter, f)
		case AnimCoVLetter:
			anims[i] = bases.New(seq, bases.StyleLetter, f)
		case AnimMessage1, AnimMessage2, AnimMessage3, AnimMessage4:
			anims[i] = scroll.New(b.cfg.Messages[id-AnimMessage1], f)
		case AnimBatteryLevel:
			anims[i] = battlevel.New(b.batteryLevel, f)
		default:
			anims[i] = frames.New(sprites[id], f)
		}
	}
	return anims
}
