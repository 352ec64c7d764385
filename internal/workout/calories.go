package workout

import "math"

// DefaultBodyWeightKg is the body weight assumed for every user.
const DefaultBodyWeightKg = 70.0

// metOxygen is the oxygen uptake (ml/kg/min) of one metabolic equivalent.
const metOxygen = 3.5

// EstimateCalories converts an intensity coefficient and an active duration
// into whole kilocalories, rounding half away from zero.
func EstimateCalories(intensity float64, elapsedSeconds int, bodyWeightKg float64) int {
	minutes := float64(elapsedSeconds) / 60

	return int(math.Round(intensity * metOxygen * bodyWeightKg / 200 * minutes))
}
