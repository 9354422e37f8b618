// Package battery watches the supply voltage and decides when the badge must shut itself down.
package battery

import (
	"time"

	"neobadge/internal/sat"
)

type Config struct {
	// DischargeMV is the voltage below which the low-voltage timer runs.
	DischargeMV uint16
	// RecoveryMV is the voltage the supply must reach before a dead battery is considered usable again. It must be
	// higher than DischargeMV.
	RecoveryMV uint16
	// OnTime is how long the voltage may stay below DischargeMV before shutting down.
	OnTime time.Duration
	// LevelMV are the ascending thresholds between the five display levels.
	LevelMV [4]uint16
}

func DefaultConfig() Config {
	return Config{
		DischargeMV: 2500,
		RecoveryMV:  3000,
		OnTime:      2 * time.Second,
		LevelMV:     [4]uint16{2750, 3000, 3100, 3200},
	}
}

// Level maps a voltage to 1 (empty) through 5 (full).
func (c Config) Level(mv uint16) uint8 {
	for i, th := range c.LevelMV {
		if mv < th {
			return uint8(i) + 1
		}
	}
	return 5
}

// Latch is the persisted "battery dead" flag.
type Latch interface {
	BatteryDead() bool
	SetBatteryDead(dead bool)
}

type Monitor struct {
	cfg    Config
	onTime uint32
	latch  Latch

	low     bool
	lastLow uint32
	acc     uint32
}

func New(cfg Config, latch Latch) *Monitor {
	return &Monitor{
		cfg:    cfg,
		onTime: uint32(cfg.OnTime / time.Millisecond),
		latch:  latch,
	}
}

// Sample takes one voltage reading at now (milliseconds) and reports whether the badge must shut down immediately.
// A shutdown sets the dead latch; it is cleared by a later sample at or above the recovery threshold.
func (m *Monitor) Sample(mv uint16, now uint32) bool {
	shutdown := false

	if m.latch.BatteryDead() {
		if mv >= m.cfg.RecoveryMV {
			m.latch.SetBatteryDead(false)
		} else {
			shutdown = true
		}
	}

	if mv < m.cfg.DischargeMV {
		if m.low {
			m.acc = sat.Add(m.acc, sat.Since(now, m.lastLow))
		}
		m.low = true
		m.lastLow = now
	} else {
		m.low = false
		m.acc = 0
	}

	if m.acc > m.onTime {
		shutdown = true
	}

	if shutdown {
		m.latch.SetBatteryDead(true)
		m.low = false
		m.acc = 0
	}
	return shutdown
}

// Wake tells the monitor the badge has just powered back up. The clock keeps running while asleep, so the next low
// sample starts a new interval instead of counting the sleep as on-time. Time already accumulated is kept.
func (m *Monitor) Wake() {
	m.low = false
}

// Level is Config.Level for the monitor's thresholds.
func (m *Monitor) Level(mv uint16) uint8 {
	return m.cfg.Level(mv)
}

// LowFor returns the accumulated time spent below the discharge threshold.
func (m *Monitor) LowFor() time.Duration {
	return time.Duration(m.acc) * time.Millisecond
}
