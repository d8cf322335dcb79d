package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fi-forecaster/internal/domain"
)

// CSVGoalsExporter writes one row per spending goal, in priority order.
type CSVGoalsExporter struct{}

func (c CSVGoalsExporter) Name() string      { return "goals-csv" }
func (c CSVGoalsExporter) Extension() string { return "csv" }

func (c CSVGoalsExporter) Format(forecast *domain.FinancialForecast) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Priority", "Goal", "TargetDate", "Item", "Kind", "Cost", "Achievable"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, g := range forecast.SpendingGoals {
		goal := g.OriginalSpendingGoal
		kind := "purchase"
		if goal.ItemPurchased.IsAsset() {
			kind = "asset"
		}
		row := []string{
			intToString(i + 1),
			goal.Name,
			goal.TargetDate.String(),
			goal.ItemPurchased.Label(),
			kind,
			GoalCost(goal).String(),
			boolToString(g.IsAchievable),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
