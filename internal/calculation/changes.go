package calculation

import "github.com/rpgo/fi-forecaster/pkg/vecmath"

// FinancialStateChanges holds the monthly deltas produced by one or more
// influencers. Index i is the i-th month after the reference date the
// instance was rendered for; instances rendered for different reference
// dates must not be merged.
type FinancialStateChanges struct {
	Cashflow         []float64 `json:"cashflow"`
	AssetsDelta      []float64 `json:"assets_delta"`
	LiabilitiesDelta []float64 `json:"liabilities_delta"`
}

// zeroChanges returns an instance of length n with all fields zero.
func zeroChanges(n int) FinancialStateChanges {
	return FinancialStateChanges{
		Cashflow:         vecmath.Zeros(n),
		AssetsDelta:      vecmath.Zeros(n),
		LiabilitiesDelta: vecmath.Zeros(n),
	}
}

// Merge sums two instances field by field. The shorter one is treated as zero
// padded, so the result has the length of the longer.
func (c FinancialStateChanges) Merge(other FinancialStateChanges) FinancialStateChanges {
	return FinancialStateChanges{
		Cashflow:         vecmath.Add(c.Cashflow, other.Cashflow),
		AssetsDelta:      vecmath.Add(c.AssetsDelta, other.AssetsDelta),
		LiabilitiesDelta: vecmath.Add(c.LiabilitiesDelta, other.LiabilitiesDelta),
	}
}

// MergeMany folds changes left to right starting from the empty instance.
func MergeMany(changes ...FinancialStateChanges) FinancialStateChanges {
	acc := zeroChanges(0)
	for _, c := range changes {
		acc = acc.Merge(c)
	}
	return acc
}

// TruncateCashflow returns a copy whose cashflow is zero at and after month.
// Asset and liability deltas are unchanged.
func (c FinancialStateChanges) TruncateCashflow(month int) FinancialStateChanges {
	out := FinancialStateChanges{
		Cashflow:         vecmath.Pad(c.Cashflow, 0),
		AssetsDelta:      vecmath.Pad(c.AssetsDelta, 0),
		LiabilitiesDelta: vecmath.Pad(c.LiabilitiesDelta, 0),
	}
	if month < 0 {
		month = 0
	}
	for i := month; i < len(out.Cashflow); i++ {
		out.Cashflow[i] = 0
	}
	return out
}

// Len returns the length of the longest field.
func (c FinancialStateChanges) Len() int {
	n := len(c.Cashflow)
	if len(c.AssetsDelta) > n {
		n = len(c.AssetsDelta)
	}
	if len(c.LiabilitiesDelta) > n {
		n = len(c.LiabilitiesDelta)
	}
	return n
}

// CashBalance returns the cumulative cash position per month.
func (c FinancialStateChanges) CashBalance() []float64 {
	return vecmath.CumulativeSum(c.Cashflow)
}

// NetWorth returns cumulative assets minus cumulative liabilities.
func (c FinancialStateChanges) NetWorth() []float64 {
	n := len(c.AssetsDelta)
	if len(c.LiabilitiesDelta) > n {
		n = len(c.LiabilitiesDelta)
	}
	assets := vecmath.CumulativeSum(vecmath.Pad(c.AssetsDelta, n))
	liabilities := vecmath.CumulativeSum(vecmath.Pad(c.LiabilitiesDelta, n))
	// Lengths are aligned above, so Subtract cannot fail.
	out, _ := vecmath.Subtract(assets, liabilities)
	return out
}
