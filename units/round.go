package units

import "math"

// roundRelTol is the relative distance within which a value is considered to
// be a rounded value plus representation noise.
const roundRelTol = 1e-12

// RoundSmart rounds v to the nearest value with few significant decimals when
// v is within floating point noise of that value (124.99999999999999 becomes
// 125), and leaves genuinely precise values untouched. It is a cosmetic
// affordance: it never changes a value beyond eliminating representation
// error.
func RoundSmart(v float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	// Scale into [1, 10) so the decimal sweep covers large and small values
	// with the same number of significant digits.
	exp := math.Floor(math.Log10(math.Abs(v)))
	for digits := 0; digits <= 10; digits++ {
		scale := math.Pow(10, float64(digits)-exp)
		r := math.Round(v*scale) / scale
		if math.Abs(v-r) <= math.Abs(v)*roundRelTol {
			return r
		}
	}
	return v
}
