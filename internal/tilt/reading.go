package tilt

// Color identifies which Tilt hydrometer broadcast a reading. The firmware
// signals it through a fixed proximity UUID rather than a payload field.
type Color int

const (
	ColorUnknown Color = iota
	ColorRed
	ColorGreen
	ColorBlack
	ColorPurple
	ColorOrange
	ColorBlue
	ColorYellow
	ColorPink
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "RED"
	case ColorGreen:
		return "GREEN"
	case ColorBlack:
		return "BLACK"
	case ColorPurple:
		return "PURPLE"
	case ColorOrange:
		return "ORANGE"
	case ColorBlue:
		return "BLUE"
	case ColorYellow:
		return "YELLOW"
	case ColorPink:
		return "PINK"
	default:
		return "UNKNOWN"
	}
}

// Reading is a single decoded Tilt broadcast. Readings are immutable and
// superseded wholesale by the next accepted decode; there is no partial merge.
type Reading struct {
	Color        Color
	TempF        int // major field, whole degrees Fahrenheit
	GravityMilli int // minor field, e.g. 1050 => SG 1.050
}

// Gravity returns the specific gravity as a float (1050 -> 1.050).
func (r Reading) Gravity() float64 {
	return GravityFromMilli(r.GravityMilli)
}
