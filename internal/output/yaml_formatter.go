package output

import (
	"gopkg.in/yaml.v3"

	"github.com/rpgo/fi-forecaster/internal/domain"
)

// YAMLFormatter serializes the forecast with the same keys as the JSON output.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string      { return "yaml" }
func (y YAMLFormatter) Extension() string { return "yaml" }

func (y YAMLFormatter) Format(forecast *domain.FinancialForecast) ([]byte, error) {
	return yaml.Marshal(forecast)
}
