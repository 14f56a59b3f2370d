package app

import (
	"testing"

	"tilt-monitor.klederson.com/internal/hat"
)

var allModes = []Mode{ModeGravity, ModeIdle, ModeTempF, ModeTempC, ModeLastUpdate, ModeTiltColor}

func TestNextMode(t *testing.T) {
	tests := []struct {
		current Mode
		button  hat.Button
		want    Mode
	}{
		{ModeGravity, hat.ButtonA, ModeIdle},
		{ModeGravity, hat.ButtonB, ModeTempF},
		{ModeGravity, hat.ButtonC, ModeLastUpdate},
		{ModeIdle, hat.ButtonA, ModeGravity},
		{ModeIdle, hat.ButtonB, ModeTempF},
		{ModeIdle, hat.ButtonC, ModeLastUpdate},
		{ModeTempF, hat.ButtonA, ModeGravity},
		{ModeTempF, hat.ButtonB, ModeTempC},
		{ModeTempF, hat.ButtonC, ModeLastUpdate},
		{ModeTempC, hat.ButtonA, ModeGravity},
		{ModeTempC, hat.ButtonB, ModeTempF},
		{ModeTempC, hat.ButtonC, ModeLastUpdate},
		{ModeLastUpdate, hat.ButtonA, ModeGravity},
		{ModeLastUpdate, hat.ButtonB, ModeTempF},
		{ModeLastUpdate, hat.ButtonC, ModeTiltColor},
		{ModeTiltColor, hat.ButtonA, ModeGravity},
		{ModeTiltColor, hat.ButtonB, ModeTempF},
		{ModeTiltColor, hat.ButtonC, ModeLastUpdate},
	}
	for _, tt := range tests {
		if got := nextMode(tt.current, tt.button); got != tt.want {
			t.Errorf("nextMode(%s, %s) = %s, want %s", tt.current, tt.button, got, tt.want)
		}
	}
}

// Pressing A twice returns to the origin only from the gravity/idle pair;
// from anywhere else the first press forces gravity.
func TestButtonADoublePress(t *testing.T) {
	for _, start := range allModes {
		end := nextMode(nextMode(start, hat.ButtonA), hat.ButtonA)
		if start == ModeGravity || start == ModeIdle {
			if end != start {
				t.Errorf("double A from %s = %s, want %s", start, end, start)
			}
		} else {
			if first := nextMode(start, hat.ButtonA); first != ModeGravity {
				t.Errorf("first A from %s = %s, want GRAVITY", start, first)
			}
			if end != ModeIdle {
				t.Errorf("double A from %s = %s, want IDLE", start, end)
			}
		}
	}
}

func TestModeString(t *testing.T) {
	want := map[Mode]string{
		ModeGravity:    "GRAVITY",
		ModeIdle:       "IDLE",
		ModeTempF:      "TEMP_F",
		ModeTempC:      "TEMP_C",
		ModeLastUpdate: "LAST_UPDATE",
		ModeTiltColor:  "TILT_COLOR",
	}
	for m, s := range want {
		if m.String() != s {
			t.Errorf("%d.String() = %q, want %q", m, m.String(), s)
		}
	}
	if Mode(42).String() != "UNKNOWN" {
		t.Errorf("unknown mode String() = %q", Mode(42).String())
	}
}
