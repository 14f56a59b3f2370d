package tilt

import (
	"math"
	"testing"
)

func TestCelsiusFromFahrenheit(t *testing.T) {
	tests := []struct {
		f    float64
		want float64
	}{
		{32, 0},
		{212, 100},
		{-40, -40},
		{65, 18.333333333333332},
		{68, 20},
	}
	for _, tt := range tests {
		if got := CelsiusFromFahrenheit(tt.f); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CelsiusFromFahrenheit(%v) = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestFahrenheitCelsiusRoundTrip(t *testing.T) {
	for f := -100.0; f <= 300.0; f += 0.5 {
		got := FahrenheitFromCelsius(CelsiusFromFahrenheit(f))
		if math.Abs(got-f) > 1e-9 {
			t.Fatalf("round trip of %v = %v", f, got)
		}
	}
}

func TestGravityFromMilli(t *testing.T) {
	tests := []struct {
		m    int
		want float64
	}{
		{1050, 1.050},
		{1000, 1.000},
		{0, 0},
		{998, 0.998},
	}
	for _, tt := range tests {
		if got := GravityFromMilli(tt.m); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("GravityFromMilli(%d) = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestReadingGravity(t *testing.T) {
	r := Reading{Color: ColorRed, TempF: 65, GravityMilli: 1050}
	if got := r.Gravity(); math.Abs(got-1.050) > 1e-12 {
		t.Errorf("Gravity() = %v, want 1.050", got)
	}
}
