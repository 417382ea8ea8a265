package credit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_NewCustomerGetsBaseline(t *testing.T) {
	result := Score(1_800_000, History{})

	assert.False(t, result.Rejected)
	assert.Equal(t, 25, result.Value)
	assert.Equal(t, Breakdown{Baseline: 25}, result.Breakdown)
}

func TestScore_HardRejection(t *testing.T) {
	h := History{
		LoanCount:        4,
		TotalPrincipal:   300_000,
		TotalTenure:      48,
		TotalPaidOnTime:  48,
		CurrentYearLoans: 4,
		ActivePrincipal:  300_000,
	}

	result := Score(200_000, h)

	assert.True(t, result.Rejected)
	assert.Equal(t, 0, result.Value)
	assert.Equal(t, Breakdown{}, result.Breakdown)
}

func TestScore_ActiveExposureEqualToLimitIsNotRejected(t *testing.T) {
	h := History{LoanCount: 1, TotalPrincipal: 200_000, TotalTenure: 12, ActivePrincipal: 200_000}

	result := Score(200_000, h)

	assert.False(t, result.Rejected)
	assert.Equal(t, 45, result.Value)
}

func TestScore_Weights(t *testing.T) {
	tests := []struct {
		name      string
		limit     float64
		history   History
		expected  int
		breakdown Breakdown
	}{
		{
			name:  "perfect history exceeds 100",
			limit: 1_000_000,
			history: History{
				LoanCount: 6, TotalPrincipal: 1_000_000, TotalTenure: 60,
				TotalPaidOnTime: 60, CurrentYearLoans: 5,
			},
			expected:  110,
			breakdown: Breakdown{OnTime: 30, LoanCount: 20, Activity: 20, Volume: 15, Baseline: 25},
		},
		{
			name:  "volume is zero once total principal exceeds the limit",
			limit: 500_000,
			history: History{
				LoanCount: 2, TotalPrincipal: 600_000, TotalTenure: 24, TotalPaidOnTime: 12,
			},
			expected:  50,
			breakdown: Breakdown{OnTime: 15, LoanCount: 10, Baseline: 25},
		},
		{
			name:      "volume is zero with a zero limit",
			limit:     0,
			history:   History{LoanCount: 1, TotalTenure: 12},
			expected:  30,
			breakdown: Breakdown{LoanCount: 5, Baseline: 25},
		},
		{
			name:      "fractional total rounds",
			limit:     1_000_000,
			history:   History{LoanCount: 1, TotalTenure: 8, TotalPaidOnTime: 1},
			expected:  34,
			breakdown: Breakdown{OnTime: 3.75, LoanCount: 5, Baseline: 25},
		},
		{
			name:      "half rounds to even",
			limit:     1_000_000,
			history:   History{LoanCount: 1, TotalTenure: 60, TotalPaidOnTime: 1},
			expected:  30,
			breakdown: Breakdown{OnTime: 0.5, LoanCount: 5, Baseline: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.limit, tt.history)
			assert.False(t, result.Rejected)
			assert.Equal(t, tt.expected, result.Value)
			assert.InDelta(t, tt.breakdown.OnTime, result.Breakdown.OnTime, 1e-9)
			assert.InDelta(t, tt.breakdown.LoanCount, result.Breakdown.LoanCount, 1e-9)
			assert.InDelta(t, tt.breakdown.Activity, result.Breakdown.Activity, 1e-9)
			assert.InDelta(t, tt.breakdown.Volume, result.Breakdown.Volume, 1e-9)
			assert.Equal(t, tt.breakdown.Baseline, result.Breakdown.Baseline)
		})
	}
}
