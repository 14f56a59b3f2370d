package app

import "tilt-monitor.klederson.com/internal/hat"

// RefreshTickMsg re-renders the mode it is tagged with. There is no explicit
// timer cancellation: a tick whose tag no longer matches the active mode is
// stale and dropped without rescheduling.
type RefreshTickMsg struct {
	Mode Mode
}

// LedOffMsg ends the pulse on the LED paired with Button.
type LedOffMsg struct {
	Button hat.Button
}

// OverrideMsg force-sets telemetry values from the command prompt. Nil fields
// are left untouched; any override resets the last-update clock.
type OverrideMsg struct {
	Gravity *float64 // specific gravity, e.g. 1.050
	TempF   *int
}
