package neobadge

import (
	"errors"
	"time"

	"neobadge/internal/animation"
	"neobadge/internal/battery"
	"neobadge/internal/button"
	"neobadge/internal/font"
	"neobadge/internal/matrix"
	"neobadge/internal/prng"
	"neobadge/internal/sat"
	"neobadge/internal/sleep"
	"neobadge/internal/store"
)

// seedBits is how many noise samples are folded into the persisted seed at boot.
const seedBits = 16

const minuteMs = uint32(time.Minute / time.Millisecond)

type Driver interface {
	// EarlyInit configures the LED chain and returns it. Hardware drivers shall enable power to the LEDs, configure
	// the button inputs and the ADC at this point. Errors are fatal.
	EarlyInit() (matrix.Strip, error)

	// Button returns true while the button is held down. It is sampled once per loop iteration per button and must
	// not debounce; that is done by the caller.
	Button(b Button) bool

	// Battery returns the supply voltage in millivolts. The second return value indicates the status of the
	// measurement: not fitted, valid, or busy. The battery monitor is skipped unless the status is available.
	Battery() (uint16, SensorStatus)

	// Brightness returns the brightness potentiometer position, 0 (minimum) through 0xFFFF. Boards without a
	// potentiometer return SensorStatusUnavailable and the configured default brightness is used.
	Brightness() (uint16, SensorStatus)

	// Noise samples an otherwise idle analog input. Only the least significant bit is used.
	Noise() uint16

	// Millis is a free running millisecond counter. It may wrap.
	Millis() uint32

	// Delay blocks for d without sleeping the hardware. It is only used for the blocking indications.
	Delay(d time.Duration)

	// Sleep powers the badge down for one hardware interval, never longer than sleep.Max, and reports whether it
	// woke on the timer or on a button edge.
	sleep.Sleeper

	// SleepUntilInput powers the badge down with no timer. It returns on the next button edge.
	SleepUntilInput()

	// PowerDown releases the LED chain and analog inputs before a sleep, and PowerUp restores them.
	PowerDown()
	PowerUp()
}

type Badge struct {
	cfg    Config
	driver Driver
	store  store.Store
	log    Logger

	settings *Settings
	mat      *matrix.Matrix
	font     *font.Font
	rng      *prng.LFSR
	engine   *animation.Engine
	sig      animation.Signal
	buttons  [buttonCount]*button.Button
	battery  *battery.Monitor

	mode SystemMode
	// cycles is how many cycles have completed since the user last picked an animation.
	cycles uint8
	// seed is the next persisted seed. It is stirred while buttons are held.
	seed uint32

	mv       uint16
	mvStatus SensorStatus

	init     bool
	lastTick uint32
	awake    uint32
}

func New(cfg Config, driver Driver, st store.Store) (*Badge, error) {
	if driver == nil {
		return nil, errors.New("must provide driver")
	}
	if st == nil {
		return nil, errors.New("must provide settings store")
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.New("config: " + err.Error())
	}

	return &Badge{
		cfg:    cfg,
		driver: driver,
		store:  st,
		log:    cfg.Logger,
	}, nil
}

func (b *Badge) Init() error {
	if b.init {
		return errors.New("already initialized")
	}
	b.log.Info("starting init")

	strip, err := b.driver.EarlyInit()
	if err != nil {
		return errors.New("early init: " + err.Error())
	}
	if strip == nil {
		return errors.New("init did not provide LED strip")
	}
	b.mat, err = matrix.New(strip, matrix.Config{
		Width:     Width,
		Height:    Height,
		Rotation:  b.cfg.Rotation,
		MaxPixels: int(b.cfg.PixelsMax),
	})
	if err != nil {
		return errors.New("matrix: " + err.Error())
	}

	b.settings, err = loadSettings(b.store, &b.cfg)
	if err != nil {
		return errors.New("load settings: " + err.Error())
	}
	b.settings.IncPowerOns()

	b.seed = b.settings.Seed()
	b.rng = prng.New(prng.DefaultSeed)
	b.rng.Seed(prng.Mix(b.seed, seedBits, b.driver.Noise))

	b.font, err = font.Load()
	if err != nil {
		return errors.New("load font: " + err.Error())
	}
	b.engine, err = animation.NewEngine(b.buildAnimations(b.font))
	if err != nil {
		return errors.New("animations: " + err.Error())
	}
	b.engine.Select(int(b.settings.Animation()))
	b.mat.SetLen(int(b.settings.PixelCount()))

	for i := range b.buttons {
		b.buttons[i] = button.New(b.cfg.Button)
	}
	b.battery = battery.New(b.cfg.Battery, b.settings)

	b.mode = ModeSelect
	b.sig.ResetRequested = true

	if err := b.settings.Flush(); err != nil {
		return err
	}

	b.lastTick = b.driver.Millis()
	b.init = true
	b.log.Infof("init complete: boot %d, animation %d (%s), %d pixels",
		b.settings.PowerOns(), b.engine.Active(), b.activeID(), b.mat.Len())
	return nil
}

// Run does not return. It attempts to run the main loop at the framerate specified in the config.
func (b *Badge) Run() {
	for range time.Tick(time.Second / time.Duration(b.cfg.Framerate)) {
		if err := b.RunTick(); err != nil {
			b.log.Info("tick: " + err.Error())
		}
	}
}

// RunTick runs a single iteration of the main loop. Errors are reported but never leave the badge in a state that
// prevents the next tick.
func (b *Badge) RunTick() error {
	if !b.init {
		return errors.New("not initialized")
	}

	now := b.driver.Millis()
	b.trackAwake(now)
	b.updateBrightness()

	if b.checkBattery(now) {
		return b.settings.Flush()
	}

	if d, ok := b.sig.Take(); ok {
		if err := b.completeCycle(d); err != nil {
			return err
		}
		now = b.driver.Millis()
	}

	// edges from here on are newer than this sample and must still cut the next sleep short
	sleep.Discard(b.driver)
	var held bool
	var err error
	for i, btn := range b.buttons {
		ev := btn.Classify(b.driver.Button(Button(i)), now)
		held = held || btn.Pressed()
		if ev != button.EventNone {
			if e := b.handle(Button(i), ev); e != nil && err == nil {
				err = e
			}
		}
	}
	if held {
		b.seed++
	}

	if b.mode == ModePixelAdjust {
		b.mat.Fill(matrix.Red, 0, 0)
	} else {
		b.engine.Render(b.mat, now, &b.sig)
	}
	if e := b.mat.Display(); e != nil && err == nil {
		err = errors.New("display: " + e.Error())
	}
	return err
}

func (b *Badge) handle(btn Button, ev button.Event) error {
	b.log.Debugf("%s %s in %s mode", btn, ev, b.mode)
	switch b.mode {
	case ModeSelect, ModeShuffle:
		switch ev {
		case button.EventClick:
			if btn == ButtonLeft {
				b.engine.Prev()
			} else {
				b.engine.Next()
			}
			return b.selectAnimation()
		case button.EventLongHold:
			if b.cfg.LongHold == LongHoldDiagnostics {
				b.showDiagnostics()
				b.sig.ResetRequested = true
				return nil
			}
			b.setMode(ModePixelAdjust)
		}
	case ModePixelAdjust:
		step := 0
		switch ev {
		case button.EventClick:
			step = 1
		case button.EventDoubleClick:
			step = 4
		case button.EventLongHold:
			b.settings.SetPixelCount(uint8(b.mat.Len()))
			b.setMode(ModeSelect)
			b.sig.ResetRequested = true
			return b.settings.Flush()
		}
		if step != 0 {
			return b.adjustPixels(btn == ButtonRight, step)
		}
	}
	return nil
}

// selectAnimation makes the engine's active animation the user's choice.
func (b *Badge) selectAnimation() error {
	b.setMode(ModeSelect)
	b.cycles = 0
	b.sig.ResetRequested = true
	b.settings.SetAnimation(uint8(b.engine.Active()))
	b.settings.SetSeed(b.seed)
	b.log.Infof("selected animation %d (%s)", b.engine.Active(), b.activeID())
	return b.settings.Flush()
}

// adjustPixels grows or shrinks the chain by step, within the configured bounds.
func (b *Badge) adjustPixels(grow bool, step int) error {
	n := b.mat.Len()
	if grow {
		n += step
		if n > int(b.cfg.PixelsMax) {
			n = int(b.cfg.PixelsMax)
		}
	} else {
		n = sat.Sub(n, step, int(b.cfg.PixelsMin))
		// pixels past the new end are no longer written, so turn them off first
		b.mat.Clear()
		if err := b.mat.Display(); err != nil {
			return errors.New("display: " + err.Error())
		}
	}
	b.mat.SetLen(n)
	b.log.Debugf("pixel count %d", n)
	return nil
}

func (b *Badge) setMode(m SystemMode) {
	if b.mode == m {
		return
	}
	b.log.Infof("mode %s -> %s", b.mode, m)
	b.mode = m
}

// completeCycle counts the finished cycle, sleeps for d and picks what plays next.
func (b *Badge) completeCycle(d sleep.Interval) error {
	b.settings.IncCycles()
	b.cycles = sat.Inc(b.cycles)
	if b.mode == ModeSelect && b.cycles >= b.cfg.ManualCycles {
		b.setMode(ModeShuffle)
	}

	cause, err := b.powerDown(d)

	if b.mode == ModeShuffle && cause != sleep.InputEdge {
		b.engine.Shuffle(b.rng)
		b.log.Debugf("shuffled to %d (%s)", b.engine.Active(), b.activeID())
	}
	b.sig.ResetRequested = true
	return err
}

// powerDown blanks the matrix, checkpoints the settings and sleeps for d, chaining hardware intervals as needed. It
// returns early if a button is pressed.
func (b *Badge) powerDown(d sleep.Interval) (sleep.WakeCause, error) {
	err := b.blank()
	if e := b.settings.Checkpoint(); e != nil && err == nil {
		err = e
	}

	b.log.Debugf("sleeping %s", d)
	b.driver.PowerDown()
	cause, n := sleep.Chain(b.driver, d)
	b.driver.PowerUp()
	b.log.Debugf("woke on %s after %d intervals", cause, n)

	b.wake()
	return cause, err
}

// shutdown blanks the matrix and sleeps until a button is pressed.
func (b *Badge) shutdown() error {
	err := b.blank()
	if e := b.settings.Flush(); e != nil && err == nil {
		err = e
	}
	b.driver.PowerDown()
	b.driver.SleepUntilInput()
	b.driver.PowerUp()
	b.wake()
	return err
}

func (b *Badge) blank() error {
	b.mat.Clear()
	if err := b.mat.Display(); err != nil {
		return errors.New("display: " + err.Error())
	}
	return nil
}

// wake restores state after any power down. Button state machines restart from released and sleep time counts
// neither as runtime nor as low-voltage on-time.
func (b *Badge) wake() {
	for _, btn := range b.buttons {
		btn.Reset()
	}
	b.battery.Wake()
	b.lastTick = b.driver.Millis()
}

// checkBattery samples the supply and reports whether the badge had to shut down.
func (b *Badge) checkBattery(now uint32) bool {
	b.mv, b.mvStatus = b.driver.Battery()
	if b.mvStatus != SensorStatusAvailable {
		return false
	}
	if !b.battery.Sample(b.mv, now) {
		return false
	}

	b.log.Infof("battery dead at %dmV, shutting down", b.mv)
	b.lowBattery()
	if err := b.shutdown(); err != nil {
		b.log.Info("shutdown: " + err.Error())
	}
	b.sig.ResetRequested = true
	return true
}

// batteryLevel is the level shown by the battery level animation.
func (b *Badge) batteryLevel() uint8 {
	if b.mvStatus != SensorStatusAvailable {
		return 5
	}
	return b.battery.Level(b.mv)
}

func (b *Badge) updateBrightness() {
	v, st := b.driver.Brightness()
	if st != SensorStatusAvailable {
		b.mat.SetBrightness(b.cfg.DefaultBrightness)
		return
	}
	lo := uint32(b.cfg.MinBrightness)
	level := lo + uint32(v)*(255-lo)/0xFFFF
	b.mat.SetBrightness(matrix.Gamma8(uint8(level)))
}

// trackAwake accumulates awake time into the persisted runtime minutes.
func (b *Badge) trackAwake(now uint32) {
	b.awake += sat.Since(now, b.lastTick)
	b.lastTick = now
	for b.awake >= minuteMs {
		b.awake -= minuteMs
		b.settings.AddRuntimeMinute()
	}
}

func (b *Badge) activeID() AnimationID {
	return b.cfg.Animations[b.engine.Active()]
}

// Mode is the current system mode.
func (b *Badge) Mode() SystemMode {
	return b.mode
}

// Animation is the index of the active animation in the table.
func (b *Badge) Animation() int {
	return b.engine.Active()
}

// Settings is the persisted record. Only valid after Init.
func (b *Badge) Settings() *Settings {
	return b.settings
}

// PixelCount is the number of active pixels.
func (b *Badge) PixelCount() int {
	return b.mat.Len()
}
