package tilt

import (
	"errors"
	"testing"
)

func TestDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		color        Color
		tempF        int
		gravityMilli int
	}{
		{"red typical", ColorRed, 65, 1050},
		{"green cold", ColorGreen, 33, 1010},
		{"black pitch", ColorBlack, 68, 1060},
		{"purple", ColorPurple, 72, 1048},
		{"orange", ColorOrange, 70, 1030},
		{"blue final", ColorBlue, 66, 1012},
		{"yellow", ColorYellow, 64, 1025},
		{"pink low", ColorPink, 60, 1000},
		{"zero values", ColorRed, 0, 0},
		{"max uint16", ColorRed, 65535, 65535},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := EncodeBeacon(tt.color, tt.tempF, tt.gravityMilli)
			r, err := Decode(raw, "Tilt")
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if r.Color != tt.color {
				t.Errorf("color = %v, want %v", r.Color, tt.color)
			}
			if r.TempF != tt.tempF {
				t.Errorf("TempF = %d, want %d", r.TempF, tt.tempF)
			}
			if r.GravityMilli != tt.gravityMilli {
				t.Errorf("GravityMilli = %d, want %d", r.GravityMilli, tt.gravityMilli)
			}
		})
	}
}

func TestDecodeRejectsOtherDevices(t *testing.T) {
	raw := EncodeBeacon(ColorRed, 65, 1050)
	for _, name := range []string{"", "tilt", "TILT", "Tilt2", "iPhone"} {
		if _, err := Decode(raw, name); !errors.Is(err, ErrNotATilt) {
			t.Errorf("Decode(name=%q) err = %v, want ErrNotATilt", name, err)
		}
	}
}

func TestDecodeNoBeaconStructure(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty payload", nil},
		{"flags only", []byte{2, 0x01, 0x04}},
		{"name only", []byte{5, 0x09, 'T', 'i', 'l', 't'}},
		{"zero-length padding", []byte{0, 0, 0, 0}},
		{"non-apple manufacturer", []byte{5, 0xFF, 0xFF, 0xFF, 0x01, 0x02}},
		{"apple but not beacon type", []byte{6, 0xFF, 0x4C, 0x00, 0x10, 0x05, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.raw, "Tilt"); !errors.Is(err, ErrNoBeaconStructure) {
				t.Errorf("err = %v, want ErrNoBeaconStructure", err)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	// Structure length runs past the end of the payload.
	raw := []byte{0x1A, 0xFF, 0x4C, 0x00}
	if _, err := Decode(raw, "Tilt"); !errors.Is(err, ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}

	// A truncated beacon structure that still declares a plausible length.
	full := EncodeBeacon(ColorRed, 65, 1050)
	truncated := full[:len(full)-10]
	if _, err := Decode(truncated, "Tilt"); !errors.Is(err, ErrMalformed) {
		t.Errorf("truncated err = %v, want ErrMalformed", err)
	}
}

func TestDecodeUnknownColorStillYieldsValues(t *testing.T) {
	raw := EncodeBeacon(ColorUnknown, 65, 1050)
	r, err := Decode(raw, "Tilt")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if r.Color != ColorUnknown {
		t.Errorf("color = %v, want ColorUnknown", r.Color)
	}
	if r.TempF != 65 || r.GravityMilli != 1050 {
		t.Errorf("values = (%d, %d), want (65, 1050)", r.TempF, r.GravityMilli)
	}
}

func TestDecodeFirstBeaconWins(t *testing.T) {
	first := EncodeBeacon(ColorRed, 65, 1050)
	second := EncodeBeacon(ColorGreen, 70, 1020)
	// Append the second packet's structures after the first's.
	raw := append(append([]byte{}, first...), second...)

	r, err := Decode(raw, "Tilt")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if r.Color != ColorRed || r.TempF != 65 || r.GravityMilli != 1050 {
		t.Errorf("got %+v, want first structure (RED, 65, 1050)", r)
	}
}

func TestDecodeSkipsLeadingStructures(t *testing.T) {
	beacon := EncodeBeacon(ColorBlue, 66, 1040)
	raw := append([]byte{3, 0x19, 0x00, 0x00}, beacon...) // appearance first

	r, err := Decode(raw, "Tilt")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if r.Color != ColorBlue {
		t.Errorf("color = %v, want ColorBlue", r.Color)
	}
}

func TestColorStrings(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorRed, "RED"},
		{ColorGreen, "GREEN"},
		{ColorBlack, "BLACK"},
		{ColorPurple, "PURPLE"},
		{ColorOrange, "ORANGE"},
		{ColorBlue, "BLUE"},
		{ColorYellow, "YELLOW"},
		{ColorPink, "PINK"},
		{ColorUnknown, "UNKNOWN"},
		{Color(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.color, got, tt.want)
		}
	}
}
