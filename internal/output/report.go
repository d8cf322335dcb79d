package output

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rpgo/fi-forecaster/internal/domain"
)

// WriteReport renders forecast with the named formatter and writes it to w.
func WriteReport(w io.Writer, forecast *domain.FinancialForecast, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(forecast)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveInfluencers writes an influencer set as YAML, the format the input
// parser reads.
func SaveInfluencers(inf *domain.FinancialStateInfluencers, filename string) error {
	b, err := yaml.Marshal(inf)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
