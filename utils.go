package tablegrid

import "math"

// clamp restricts a value to a range
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// approxEqual compares two normalized coordinates within tolerance
func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
