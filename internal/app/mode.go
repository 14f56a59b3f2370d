package app

import "tilt-monitor.klederson.com/internal/hat"

// Mode selects what the segment display shows. Exactly one mode is active at
// a time; the initial mode is ModeGravity.
type Mode int

const (
	ModeGravity Mode = iota
	ModeIdle
	ModeTempF
	ModeTempC
	ModeLastUpdate
	ModeTiltColor
)

func (m Mode) String() string {
	switch m {
	case ModeGravity:
		return "GRAVITY"
	case ModeIdle:
		return "IDLE"
	case ModeTempF:
		return "TEMP_F"
	case ModeTempC:
		return "TEMP_C"
	case ModeLastUpdate:
		return "LAST_UPDATE"
	case ModeTiltColor:
		return "TILT_COLOR"
	default:
		return "UNKNOWN"
	}
}

// nextMode applies the per-button toggle rules:
//
//	A toggles gravity and idle; from any other mode it forces gravity.
//	B goes to Fahrenheit unless already there, then Celsius.
//	C goes to last-update age unless already there, then Tilt color.
func nextMode(current Mode, b hat.Button) Mode {
	switch b {
	case hat.ButtonA:
		if current == ModeGravity {
			return ModeIdle
		}
		return ModeGravity
	case hat.ButtonB:
		if current == ModeTempF {
			return ModeTempC
		}
		return ModeTempF
	case hat.ButtonC:
		if current == ModeLastUpdate {
			return ModeTiltColor
		}
		return ModeLastUpdate
	}
	return current
}
