// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestLinearToDB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{"unity", 1, 0},
		{"half", 0.5, -6.0206},
		{"tenth", 0.1, -20},
		{"double", 2, 6.0206},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToDB(tt.factor)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("LinearToDB(%v) = %v, want %v", tt.factor, got, tt.want)
			}
		})
	}
}

func TestLinearToDB_Silence(t *testing.T) {
	t.Parallel()

	for _, factor := range []float64{0, -1} {
		if got := LinearToDB(factor); !math.IsInf(got, -1) {
			t.Errorf("LinearToDB(%v) = %v, want -Inf", factor, got)
		}
	}
}

func TestDBToLinear_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, factor := range []float64{0, 0.01, 0.25, 0.5, 1} {
		got := DBToLinear(LinearToDB(factor))
		if math.Abs(got-factor) > 1e-9 {
			t.Errorf("DBToLinear(LinearToDB(%v)) = %v", factor, got)
		}
	}
}
