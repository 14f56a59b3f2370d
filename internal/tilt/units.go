package tilt

// CelsiusFromFahrenheit converts with the exact 5/9 fraction.
func CelsiusFromFahrenheit(f float64) float64 {
	return (f - 32) * 5 / 9
}

// FahrenheitFromCelsius converts with the exact 9/5 fraction.
func FahrenheitFromCelsius(c float64) float64 {
	return c*9/5 + 32
}

// GravityFromMilli converts milli-gravity units to specific gravity.
func GravityFromMilli(m int) float64 {
	return float64(m) / 1000
}
