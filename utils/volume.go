// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// LinearToDB converts a linear amplitude factor to decibels.
// A factor of 1 is 0 dB; a factor of 0 or below is -Inf (silence).
func LinearToDB(factor float64) float64 {
	if factor <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(factor)
}

// DBToLinear is the inverse of LinearToDB. -Inf maps to 0.
func DBToLinear(db float64) float64 {
	if math.IsInf(db, -1) {
		return 0
	}
	return math.Pow(10, db/20)
}
