package neobadge

// SystemMode is what the buttons currently control.
type SystemMode uint8

const (
	// ModeSelect plays the animation the user picked.
	ModeSelect SystemMode = iota
	// ModeShuffle picks a different animation after every sleep.
	ModeShuffle
	// ModePixelAdjust changes the number of LEDs in the chain.
	ModePixelAdjust
)

func (m SystemMode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeShuffle:
		return "shuffle"
	case ModePixelAdjust:
		return "pixel adjust"
	default:
		return "INVALID"
	}
}

type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight

	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "INVALID"
	}
}

type SensorStatus uint8

const (
	// SensorStatusUnavailable indicates that the sensor is never available (not fitted on this board).
	SensorStatusUnavailable SensorStatus = iota
	// SensorStatusAvailable indicates that the returned value is accurate.
	SensorStatusAvailable
	// SensorStatusBusy indicates that the sensor is temporarily unavailable, e.g. the ADC is still settling after
	// wake.
	SensorStatusBusy
)

func (s SensorStatus) String() string {
	switch s {
	case SensorStatusUnavailable:
		return "unavailable"
	case SensorStatusAvailable:
		return "available"
	case SensorStatusBusy:
		return "busy"
	default:
		return "INVALID"
	}
}

// LongHoldAction is what a long hold does outside pixel adjust mode.
type LongHoldAction uint8

const (
	LongHoldPixelAdjust LongHoldAction = iota
	LongHoldDiagnostics
)

func (a LongHoldAction) String() string {
	switch a {
	case LongHoldPixelAdjust:
		return "pixel adjust"
	case LongHoldDiagnostics:
		return "diagnostics"
	default:
		return "INVALID"
	}
}
