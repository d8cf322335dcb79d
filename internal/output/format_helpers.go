package output

import (
	"fmt"
	"strconv"

	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/pkg/decimal"
)

// FormatCurrency formats an amount as a dollar figure with 2 decimals and
// thousands separators.
func FormatCurrency(amount float64) string { return decimal.NewMoney(amount).Format() }

// FormatMonths renders a month count as years and months.
func FormatMonths(months int) string {
	years, rest := months/12, months%12
	switch {
	case years == 0:
		return plural(rest, "month")
	case rest == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(rest, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// GoalCost returns what a goal's purchase costs up front.
func GoalCost(goal domain.SpendingGoal) decimal.Money {
	if goal.ItemPurchased.IsAsset() {
		return decimal.NewMoney(goal.ItemPurchased.Asset.InitialValue).Round()
	}
	return decimal.NewMoney(goal.ItemPurchased.Value).Round()
}

func moneyAt(v []float64, i int) string {
	if i >= len(v) {
		return ""
	}
	return decimal.NewMoney(v[i]).String()
}

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }
