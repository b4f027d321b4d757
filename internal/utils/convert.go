package utils

import "math"

// Convert applies a dollar-to-currency rate to a USD amount, rounded to
// 2 decimal places. The rate must already be validated (> 0) upstream.
func Convert(amountUSD, rate float64) float64 {
	return Round2(amountUSD * rate)
}

// Round2 rounds to 2 decimal places, half away from zero
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Progress returns current/target as a percentage rounded to 2 decimals
func Progress(current, target float64) float64 {
	return Round2(current / target * 100)
}
