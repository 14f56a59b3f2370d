package config

import "time"

const (
	// Beacon
	BeaconName   = "Tilt" // advertised local name of the hydrometer
	DefaultColor = "RED"  // shown in color mode before the first reading

	// Display
	DisplayWidth  = 4                       // alphanumeric cells on the segment display
	RefreshPeriod = 1000 * time.Millisecond // per-mode self-refresh period
	IdleMessage   = "GBYE"                  // farewell shown when the display is idled
	NoReadingText = "N/A"

	// LED pulse
	LedPulseDuration = 200 * time.Millisecond

	// GPIO (BCM numbering, Rainbow HAT wiring)
	GPIOChip   = "gpiochip0"
	PinButtonA = 21
	PinButtonB = 20
	PinButtonC = 16
	PinLedA    = 6  // red
	PinLedB    = 19 // green
	PinLedC    = 26 // blue

	// Demo fermentation simulation
	DemoBeaconInterval = 2 * time.Second
	DemoStartGravity   = 1060 // milli-gravity at pitch
	DemoFinalGravity   = 1012
	DemoStartTempF     = 68

	// App
	AppName    = "TILT-HAT"
	AppVersion = "1.0"
)
