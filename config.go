package neobadge

import (
	"errors"
	"strconv"

	"neobadge/internal/animation/scroll"
	"neobadge/internal/battery"
	"neobadge/internal/button"
	"neobadge/internal/matrix"
)

const (
	// Width and Height of the matrix. The glyph font is drawn at this size.
	Width  = 5
	Height = 5
)

type Config struct {
	Button  button.Config
	Battery battery.Config

	// ManualCycles is how many cycles of a manually selected animation play before the badge starts shuffling.
	ManualCycles uint8
	LongHold     LongHoldAction

	// CommitEvery is how many counter updates (cycles and runtime minutes) may stay uncommitted before the next
	// sleep writes the settings to flash. Up to CommitEvery-1 updates are lost on power loss.
	CommitEvery uint8

	// PixelsMin and PixelsMax bound the chain length in pixel adjust mode. PixelsInit is used when the persisted
	// count is out of range.
	PixelsMin, PixelsMax, PixelsInit uint8

	// MinBrightness is the brightness with the potentiometer turned all the way down. DefaultBrightness is used when
	// the board has no potentiometer.
	MinBrightness     uint8
	DefaultBrightness uint8

	// Framerate is the main loop rate used by Run.
	Framerate uint
	Rotation  matrix.Rotation

	// Animations is the animation table, in button order. At most 255 entries.
	Animations []AnimationID
	// Messages are the texts of the four message animations.
	Messages [4]scroll.Message

	// Logger defaults to the console logger.
	Logger Logger
}

func DefaultConfig() Config {
	return Config{
		Button:            button.DefaultConfig(),
		Battery:           battery.DefaultConfig(),
		ManualCycles:      1,
		LongHold:          LongHoldPixelAdjust,
		CommitEvery:       32,
		PixelsMin:         1,
		PixelsMax:         Width * Height,
		PixelsInit:        Width * Height,
		MinBrightness:     24,
		DefaultBrightness: 64,
		Framerate:         100,
		Rotation:          matrix.WiresTop,
		Animations:        DefaultAnimations(),
		Messages:          DefaultMessages(),
	}
}

func (c *Config) validate() error {
	if c.Framerate == 0 {
		return errors.New("must run at least one frame per second")
	}
	if c.ManualCycles == 0 {
		return errors.New("manual cycles must be at least 1")
	}
	if c.CommitEvery == 0 {
		return errors.New("commit interval must be at least 1")
	}
	if c.Button.LongHold <= c.Button.Hold {
		return errors.New("long hold must be longer than hold")
	}
	if c.Battery.RecoveryMV <= c.Battery.DischargeMV {
		return errors.New("battery recovery threshold must be above discharge threshold")
	}
	for i := 1; i < len(c.Battery.LevelMV); i++ {
		if c.Battery.LevelMV[i] < c.Battery.LevelMV[i-1] {
			return errors.New("battery level thresholds must ascend")
		}
	}
	if c.PixelsMin == 0 || c.PixelsMax > Width*Height || c.PixelsMin > c.PixelsMax {
		return errors.New("pixel bounds must be within 1 and " + strconv.Itoa(Width*Height))
	}
	if c.PixelsInit < c.PixelsMin || c.PixelsInit > c.PixelsMax {
		return errors.New("initial pixel count out of bounds")
	}
	if len(c.Animations) == 0 {
		return errors.New("must provide at least one animation")
	}
	if len(c.Animations) > 255 {
		return errors.New("too many animations")
	}
	for _, id := range c.Animations {
		if !id.Valid() {
			return errors.New("unknown animation " + strconv.Itoa(int(id)))
		}
	}
	if c.LongHold > LongHoldDiagnostics {
		return errors.New("unknown long hold action")
	}
	if c.Logger == nil {
		c.Logger = ConsoleLogger(false)
	}
	return nil
}
