// Package scoring computes the similarity of a lost report and a found report.
// All functions are pure; inputs are never modified.
package scoring

import "math"

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// cosineEpsilon keeps the denominator positive for near-zero vectors.
const cosineEpsilon = 1e-8

// Cosine returns the cosine similarity of a and b clamped to [0, 1].
//
//	cos(a, b) = a·b / (‖a‖‖b‖ + ε)
//
// Empty vectors or vectors of different length yield 0.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}

	sim := dot / (math.Sqrt(na)*math.Sqrt(nb) + cosineEpsilon)
	return clamp(sim, 0, 1)
}

// Haversine returns the great-circle distance in kilometres between two
// points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := radians(lat1)
	φ2 := radians(lat2)
	dφ := radians(lat2 - lat1)
	dλ := radians(lon2 - lon1)

	h := math.Sin(dφ/2)*math.Sin(dφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(dλ/2)*math.Sin(dλ/2)

	return 2 * EarthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

// LinearDecay maps a distance to [0, 1]: 1 at zero, 0 at or beyond limit.
//
//	decay(x, L) = max(0, 1 - |x|/L)
func LinearDecay(x, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Max(0, 1-math.Abs(x)/limit)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}
