package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/pkg/dateutil"
)

// CSVMonthlyExporter writes one row per forecast month.
type CSVMonthlyExporter struct{}

func (c CSVMonthlyExporter) Name() string      { return "csv" }
func (c CSVMonthlyExporter) Extension() string { return "csv" }

func (c CSVMonthlyExporter) Format(forecast *domain.FinancialForecast) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month", "Date", "CashflowDelta", "CashBalance", "NetWorth", "IsIndependent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	balance := forecast.CashBalance()
	fiMonth := dateutil.MonthsBetween(forecast.FinancialIndependenceDate.Time, forecast.CurrentDate.Time)
	n := max(len(balance), len(forecast.MonthlyNetworth))
	for i := 0; i < n; i++ {
		row := []string{
			strconv.Itoa(i),
			dateutil.DateAfterMonths(forecast.CurrentDate.Time, i).Format(dateutil.DateLayout),
			moneyAt(forecast.MonthlyCashflowDeltas, i),
			moneyAt(balance, i),
			moneyAt(forecast.MonthlyNetworth, i),
			boolToString(i >= fiMonth),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
