package normalize

import "math"

// NormalizeLatitude returns v rounded to 6 decimal places, or nil when it is
// missing, not finite, or outside [-90, 90].
func NormalizeLatitude(v *float64) *float64 {
	return coordinate(v, 90)
}

// NormalizeLongitude returns v rounded to 6 decimal places, or nil when it is
// missing, not finite, or outside [-180, 180].
func NormalizeLongitude(v *float64) *float64 {
	return coordinate(v, 180)
}

func coordinate(v *float64, limit float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || math.Abs(*v) > limit {
		return nil
	}
	c := math.Round(*v*1e6) / 1e6
	return &c
}
