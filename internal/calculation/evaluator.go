package calculation

import (
	"time"

	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/pkg/vecmath"
)

// EvaluateSpendingGoal decides whether goal can be afforded on top of the
// running cash balance. Only months covered by both the running balance and
// the goal's own cashflow are checked, so a goal is never rejected for an
// overdraft outside its horizon. Neither input is modified.
func EvaluateSpendingGoal(goal domain.SpendingGoal, runningCashBalance []float64, currentDate time.Time) domain.ProcessedSpendingGoal {
	changes := GenerateFinancialStateChanges(goal, currentDate)
	return domain.ProcessedSpendingGoal{
		IsAchievable:         affordable(changes, runningCashBalance),
		OriginalSpendingGoal: goal,
	}
}

func affordable(goalChanges FinancialStateChanges, runningCashBalance []float64) bool {
	combined := vecmath.Add(runningCashBalance, vecmath.CumulativeSum(goalChanges.Cashflow))
	n := len(goalChanges.Cashflow)
	if len(runningCashBalance) < n {
		n = len(runningCashBalance)
	}
	return vecmath.AllNonNegative(combined[:n])
}
