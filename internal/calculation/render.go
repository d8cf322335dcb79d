package calculation

import (
	"time"

	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/pkg/dateutil"
)

// GenerateFinancialStateChanges renders an influencer into monthly deltas
// indexed from currentDate. Records whose effect lies entirely before
// currentDate render as the empty instance.
func GenerateFinancialStateChanges(inf domain.Influencer, currentDate time.Time) FinancialStateChanges {
	switch v := inf.(type) {
	case domain.OnceOffExpense:
		return onceOffChanges(v.Date.Time, -v.Value, currentDate)
	case domain.OnceOffIncome:
		return onceOffChanges(v.Date.Time, v.Amount, currentDate)
	case domain.MonthlyExpense:
		return monthlyChanges(v.StartDate.Time, v.EndDate.Time, -v.Amount, currentDate)
	case domain.MonthlyIncome:
		return monthlyChanges(v.StartDate.Time, v.EndDate.Time, v.Amount, currentDate)
	case domain.Purchase:
		return purchaseChanges(v, currentDate)
	case domain.Asset:
		return assetChanges(v, currentDate)
	case domain.SpendingGoal:
		return purchaseChanges(v.ItemPurchased, currentDate)
	default:
		return zeroChanges(0)
	}
}

// renderAll merges the rendered changes of every influencer.
func renderAll(infs []domain.Influencer, currentDate time.Time) FinancialStateChanges {
	changes := make([]FinancialStateChanges, 0, len(infs))
	for _, inf := range infs {
		changes = append(changes, GenerateFinancialStateChanges(inf, currentDate))
	}
	return MergeMany(changes...)
}

func onceOffChanges(date time.Time, amount float64, currentDate time.Time) FinancialStateChanges {
	n := dateutil.MonthsBetween(date, currentDate) + 1
	if n <= 0 {
		return zeroChanges(0)
	}
	c := zeroChanges(n)
	c.Cashflow[n-1] = amount
	return c
}

// monthlyChanges fills every month after the start offset up to, but not
// including, the end offset.
func monthlyChanges(start, end time.Time, amount float64, currentDate time.Time) FinancialStateChanges {
	n := dateutil.MonthsBetween(end, currentDate)
	if n <= 0 {
		return zeroChanges(0)
	}
	c := zeroChanges(n)
	first := dateutil.MonthsBetween(start, currentDate) + 1
	if first < 0 {
		first = 0
	}
	for i := first; i < n; i++ {
		c.Cashflow[i] = amount
	}
	return c
}

func purchaseChanges(p domain.Purchase, currentDate time.Time) FinancialStateChanges {
	if p.Asset != nil {
		return assetChanges(*p.Asset, currentDate)
	}
	return onceOffChanges(p.Date.Time, -p.Value, currentDate)
}

// assetChanges models buying an asset, holding it while its value changes and
// selling it. The value in month i (P <= i < L) is the initial value times the
// growth factor accumulated over i-P+1 months.
//
// When the liquidation month does not come after the purchase month the buy
// and the sale cancel out and the result is all zero up to the purchase
// month.
func assetChanges(a domain.Asset, currentDate time.Time) FinancialStateChanges {
	p := dateutil.MonthsBetween(a.PurchaseDate.Time, currentDate)
	l := dateutil.MonthsBetween(a.LiquidationDate.Time, currentDate)
	if l <= p {
		return zeroChanges(p + 1)
	}
	if l <= 0 {
		return zeroChanges(0)
	}

	c := zeroChanges(l)
	scalar := monthlyGrowth(a.Appreciation)
	factor := 1.0
	var prev float64
	for i := p; i < l; i++ {
		factor *= scalar
		// explicit conversion keeps each product rounded on its own
		value := float64(a.InitialValue * factor)
		entry := i == p || i == 0
		switch {
		case i < 0:
			// held before the reference month
		case i == l-1:
			// entering and leaving in the same month leaves net worth alone
			if !entry {
				c.AssetsDelta[i] = -value
			}
			c.Cashflow[i] += value
		case entry:
			c.AssetsDelta[i] = value
		default:
			c.AssetsDelta[i] = value - prev
		}
		prev = value
	}
	if p >= 0 {
		c.Cashflow[p] -= a.InitialValue
	}
	return c
}

func monthlyGrowth(a domain.Appreciation) float64 {
	switch a.Type {
	case domain.AppreciationLinear:
		return a.Scalar
	default:
		return 1
	}
}
