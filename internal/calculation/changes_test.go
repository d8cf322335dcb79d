package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/fi-forecaster/pkg/vecmath"
)

func cashflowOnly(v ...float64) FinancialStateChanges {
	c := zeroChanges(len(v))
	copy(c.Cashflow, v)
	return c
}

func TestFinancialStateChanges_MergePadsShorter(t *testing.T) {
	merged := cashflowOnly(1, 2, 3).Merge(cashflowOnly(1, 2))
	assert.Equal(t, []float64{2, 4, 3}, merged.Cashflow)
	assert.Equal(t, []float64{0, 0, 0}, merged.AssetsDelta)
	assert.Equal(t, []float64{0, 0, 0}, merged.LiabilitiesDelta)

	// order does not matter
	assert.Equal(t, merged, cashflowOnly(1, 2).Merge(cashflowOnly(1, 2, 3)))
}

func TestFinancialStateChanges_MergeAdditivity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
	}{
		{"integers", []float64{1, 2, 3}, []float64{4, 5, 6}},
		{"mixed signs", []float64{-100, 0, 250.5}, []float64{100, -0.5, -250}},
		{"single", []float64{7}, []float64{-7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := cashflowOnly(tt.a...).Merge(cashflowOnly(tt.b...))
			assert.Equal(t,
				vecmath.Add(vecmath.CumulativeSum(tt.a), vecmath.CumulativeSum(tt.b)),
				merged.CashBalance())
		})
	}
}

func TestMergeMany(t *testing.T) {
	assert.Empty(t, MergeMany().Cashflow)

	got := MergeMany(cashflowOnly(1), cashflowOnly(0, 2), cashflowOnly(0, 0, 3))
	assert.Equal(t, []float64{1, 2, 3}, got.Cashflow)
	assert.Equal(t, 3, got.Len())
}

func TestFinancialStateChanges_TruncateCashflow(t *testing.T) {
	original := cashflowOnly(5, 5, 5, 5)
	original.AssetsDelta[2] = 9

	tests := []struct {
		name     string
		month    int
		expected []float64
	}{
		{"middle", 2, []float64{5, 5, 0, 0}},
		{"start", 0, []float64{0, 0, 0, 0}},
		{"negative month", -3, []float64{0, 0, 0, 0}},
		{"past the end", 10, []float64{5, 5, 5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := original.TruncateCashflow(tt.month)
			assert.Equal(t, tt.expected, got.Cashflow)
			assert.Equal(t, []float64{0, 0, 9, 0}, got.AssetsDelta)
		})
	}

	assert.Equal(t, []float64{5, 5, 5, 5}, original.Cashflow, "input must not be modified")
}

func TestFinancialStateChanges_NetWorth(t *testing.T) {
	c := FinancialStateChanges{
		Cashflow:         []float64{0, 0, 0},
		AssetsDelta:      []float64{100, 10, -110},
		LiabilitiesDelta: []float64{50},
	}
	require.Equal(t, 3, c.Len())
	assert.Equal(t, []float64{50, 60, -50}, c.NetWorth())
}
