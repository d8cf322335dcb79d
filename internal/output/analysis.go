package output

import (
	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/pkg/dateutil"
	"github.com/rpgo/fi-forecaster/pkg/decimal"
)

// Summary holds the headline figures of a forecast.
type Summary struct {
	CurrentDate               string        `json:"current_date"`
	FinancialIndependenceDate string        `json:"financial_independence_date"`
	MonthsToIndependence      int           `json:"months_to_independence"`
	FinalCashBalance          decimal.Money `json:"final_cash_balance"`
	FinalNetworth             decimal.Money `json:"final_networth"`
	LowestCashBalance         decimal.Money `json:"lowest_cash_balance"`
	LowestCashDate            string        `json:"lowest_cash_date"`
	GoalsAchieved             int           `json:"goals_achieved"`
	GoalsTotal                int           `json:"goals_total"`
	AchievedGoalSpend         decimal.Money `json:"achieved_goal_spend"`
}

// Summarize extracts the headline figures from a forecast.
func Summarize(forecast *domain.FinancialForecast) Summary {
	s := Summary{
		CurrentDate:               forecast.CurrentDate.String(),
		FinancialIndependenceDate: forecast.FinancialIndependenceDate.String(),
		MonthsToIndependence:      dateutil.MonthsBetween(forecast.FinancialIndependenceDate.Time, forecast.CurrentDate.Time),
		FinalCashBalance:          decimal.NewMoney(forecast.FinalCashBalance()).Round(),
		FinalNetworth:             decimal.NewMoney(forecast.FinalNetworth()).Round(),
		GoalsTotal:                len(forecast.SpendingGoals),
	}

	balance := forecast.CashBalance()
	if len(balance) > 0 {
		low := 0
		for i, v := range balance {
			if v < balance[low] {
				low = i
			}
		}
		s.LowestCashBalance = decimal.NewMoney(balance[low]).Round()
		s.LowestCashDate = dateutil.DateAfterMonths(forecast.CurrentDate.Time, low).Format(dateutil.DateLayout)
	}

	spend := decimal.NewMoney(0)
	for _, g := range forecast.SpendingGoals {
		if g.IsAchievable {
			s.GoalsAchieved++
			spend = spend.Add(GoalCost(g.OriginalSpendingGoal))
		}
	}
	s.AchievedGoalSpend = spend
	return s
}
