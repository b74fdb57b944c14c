package mathutil

import "math"

// WrapDegrees maps an angle into [0, 360).
func WrapDegrees(a float64) float64 {
	d := math.Mod(a, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Clamp saturates v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
