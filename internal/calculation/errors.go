package calculation

import "errors"

var (
	// ErrMonthlySpendingExceedsIncome means the fixed obligations alone drive
	// the cash balance negative. It is never retried.
	ErrMonthlySpendingExceedsIncome = errors.New("monthly spending exceeds income")

	// ErrUnableToProduceFinancialForecast means the search produced no
	// acceptable forecast.
	ErrUnableToProduceFinancialForecast = errors.New("unable to produce financial forecast")
)
