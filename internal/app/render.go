package app

import (
	"fmt"
	"time"

	"tilt-monitor.klederson.com/internal/config"
	"tilt-monitor.klederson.com/internal/tilt"
)

// renderMode computes the segment string for a mode. A nil reading renders as
// N/A on the value modes and as the configured default color on the color
// mode. The decimal point shares a display cell with the digit before it, so
// "1.050" fits the 4-cell display.
func renderMode(m Mode, r *tilt.Reading, lastUpdate, now time.Time) string {
	switch m {
	case ModeGravity:
		if r == nil {
			return config.NoReadingText
		}
		return fmt.Sprintf("%.3f", r.Gravity())
	case ModeIdle:
		return config.IdleMessage
	case ModeTempF:
		if r == nil {
			return config.NoReadingText
		}
		return fmt.Sprintf("%dF", r.TempF)
	case ModeTempC:
		if r == nil {
			return config.NoReadingText
		}
		return fmt.Sprintf("%.1fC", tilt.CelsiusFromFahrenheit(float64(r.TempF)))
	case ModeLastUpdate:
		return fmt.Sprintf("%ds", int(now.Sub(lastUpdate).Seconds()))
	case ModeTiltColor:
		if r == nil || r.Color == tilt.ColorUnknown {
			return config.DefaultColor
		}
		return r.Color.String()
	default:
		return ""
	}
}
