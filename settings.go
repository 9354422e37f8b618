package neobadge

import (
	"errors"

	"neobadge/internal/sat"
	"neobadge/internal/store"
)

// Persisted record layout. Multi-byte fields are little endian.
const (
	addrAnimation = 0
	addrPixels    = 1
	addrSeed      = 2
	addrFlags     = 6
	addrVersion   = 7
	addrRuntime   = 8
	addrCycles    = 12
	addrPowerOns  = 14

	// SettingsSize is the number of bytes of storage the settings need.
	SettingsSize = 16

	settingsVersion = 1

	flagBatteryDead = 1 << 0
)

// Settings is the persisted record. Every setter writes through to the store; Flush commits stores that buffer
// writes and Checkpoint commits them only once enough has changed.
type Settings struct {
	st store.Store

	every   uint8
	pending uint8 // counter updates since the last flush
	flagged bool  // a flag changed since the last flush
}

// loadSettings opens the record in st and corrects out-of-range values, writing the corrections back. A record with
// a different layout version (including blank storage) has its flags and counters reset.
func loadSettings(st store.Store, cfg *Config) (*Settings, error) {
	if st == nil {
		return nil, errors.New("must provide settings store")
	}
	if st.Size() < SettingsSize {
		return nil, store.ErrTooSmall
	}
	s := &Settings{st: st, every: cfg.CommitEvery}
	log := cfg.Logger

	if v := st.Read(addrVersion); v != settingsVersion {
		log.Infof("settings layout %d, resetting counters", v)
		st.WriteIfChanged(addrFlags, 0)
		store.WriteUint32(st, addrRuntime, 0)
		store.WriteUint16(st, addrCycles, 0)
		store.WriteUint16(st, addrPowerOns, 0)
		st.WriteIfChanged(addrVersion, settingsVersion)
	}

	if a := s.Animation(); int(a) >= len(cfg.Animations) {
		log.Infof("persisted animation %d out of range, using 0", a)
		s.SetAnimation(0)
	}
	if p := s.PixelCount(); p < cfg.PixelsMin || p > cfg.PixelsMax {
		log.Infof("persisted pixel count %d out of range, using %d", p, cfg.PixelsInit)
		s.SetPixelCount(cfg.PixelsInit)
	}

	if err := s.Flush(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Animation() uint8 {
	return s.st.Read(addrAnimation)
}

func (s *Settings) SetAnimation(i uint8) {
	s.st.WriteIfChanged(addrAnimation, i)
}

func (s *Settings) PixelCount() uint8 {
	return s.st.Read(addrPixels)
}

func (s *Settings) SetPixelCount(n uint8) {
	s.st.WriteIfChanged(addrPixels, n)
}

func (s *Settings) Seed() uint32 {
	return store.ReadUint32(s.st, addrSeed)
}

func (s *Settings) SetSeed(seed uint32) {
	store.WriteUint32(s.st, addrSeed, seed)
}

func (s *Settings) BatteryDead() bool {
	return s.st.Read(addrFlags)&flagBatteryDead != 0
}

func (s *Settings) SetBatteryDead(dead bool) {
	f := s.st.Read(addrFlags)
	if dead {
		f |= flagBatteryDead
	} else {
		f &^= flagBatteryDead
	}
	if f != s.st.Read(addrFlags) {
		s.st.WriteIfChanged(addrFlags, f)
		s.flagged = true
	}
}

func (s *Settings) RuntimeMinutes() uint32 {
	return store.ReadUint32(s.st, addrRuntime)
}

func (s *Settings) Cycles() uint16 {
	return store.ReadUint16(s.st, addrCycles)
}

func (s *Settings) PowerOns() uint16 {
	return store.ReadUint16(s.st, addrPowerOns)
}

func (s *Settings) AddRuntimeMinute() {
	store.WriteUint32(s.st, addrRuntime, sat.Inc(s.RuntimeMinutes()))
	s.pending = sat.Inc(s.pending)
}

func (s *Settings) IncCycles() {
	store.WriteUint16(s.st, addrCycles, sat.Inc(s.Cycles()))
	s.pending = sat.Inc(s.pending)
}

func (s *Settings) IncPowerOns() {
	store.WriteUint16(s.st, addrPowerOns, sat.Inc(s.PowerOns()))
}

// Flush commits pending writes for stores that buffer them.
func (s *Settings) Flush() error {
	if err := store.Sync(s.st); err != nil {
		return errors.New("flush settings: " + err.Error())
	}
	s.pending = 0
	s.flagged = false
	return nil
}

// Checkpoint flushes if a flag changed or at least CommitEvery counter updates are pending.
func (s *Settings) Checkpoint() error {
	if !s.flagged && s.pending < s.every {
		return nil
	}
	return s.Flush()
}
