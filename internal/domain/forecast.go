package domain

import "github.com/rpgo/fi-forecaster/pkg/vecmath"

// ProcessedSpendingGoal records whether a goal fit into the forecast.
type ProcessedSpendingGoal struct {
	IsAchievable         bool         `yaml:"is_achievable" json:"is_achievable"`
	OriginalSpendingGoal SpendingGoal `yaml:"original_spending_goal" json:"original_spending_goal"`
}

// FinancialForecast is the result of one forecast computation. All monthly
// series are indexed from CurrentDate.
type FinancialForecast struct {
	CurrentDate                Date                    `yaml:"current_date" json:"current_date"`
	SpendingGoals              []ProcessedSpendingGoal `yaml:"spending_goals" json:"spending_goals"`
	MonthlyCashflowDeltas      []float64               `yaml:"monthly_cashflow_deltas" json:"monthly_cashflow_deltas"`
	MonthlyNetworth            []float64               `yaml:"monthly_networth" json:"monthly_networth"`
	FinancialIndependenceDate  Date                    `yaml:"financial_independence_date" json:"financial_independence_date"`
	AllSpendingGoalsAchievable bool                    `yaml:"all_spending_goals_achievable" json:"all_spending_goals_achievable"`
}

// CashBalance returns the cumulative cash position per month.
func (f *FinancialForecast) CashBalance() []float64 {
	return vecmath.CumulativeSum(f.MonthlyCashflowDeltas)
}

// FinalCashBalance returns the cash position in the last forecast month.
func (f *FinancialForecast) FinalCashBalance() float64 {
	return vecmath.Last(f.CashBalance())
}

// FinalNetworth returns the net worth in the last forecast month.
func (f *FinancialForecast) FinalNetworth() float64 {
	return vecmath.Last(f.MonthlyNetworth)
}

// UnachievableGoals lists the names of goals that did not fit.
func (f *FinancialForecast) UnachievableGoals() []string {
	var names []string
	for _, g := range f.SpendingGoals {
		if !g.IsAchievable {
			names = append(names, g.OriginalSpendingGoal.Name)
		}
	}
	return names
}
