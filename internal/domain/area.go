package domain

import "math"

// SanitizeArea maps non-finite area values to nil so unrepresentable input
// degrades to an absent area instead of poisoning sort order or display.
func SanitizeArea(a *float64) *float64 {
	if a == nil || math.IsNaN(*a) || math.IsInf(*a, 0) {
		return nil
	}
	return a
}

// AreaOrDefault returns the first non-nil area value, or the fallback.
func AreaOrDefault(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}
