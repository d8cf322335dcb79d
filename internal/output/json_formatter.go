package output

import (
	"encoding/json"

	"github.com/rpgo/fi-forecaster/internal/domain"
)

// JSONFormatter serializes the forecast as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(forecast *domain.FinancialForecast) ([]byte, error) {
	b, err := json.MarshalIndent(forecast, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
