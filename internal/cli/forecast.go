package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/fi-forecaster/internal/calculation"
	"github.com/rpgo/fi-forecaster/internal/config"
	"github.com/rpgo/fi-forecaster/internal/output"
	"github.com/rpgo/fi-forecaster/pkg/dateutil"
)

type forecastFlags struct {
	format      string
	currentDate string
	horizon     int
	narrowing   string
	saveDir     string
}

func newForecastCommand(a *app) *cobra.Command {
	f := &forecastFlags{}
	cmd := &cobra.Command{
		Use:   "forecast <input-file>",
		Short: "Forecast cash flow and the financial independence date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForecast(cmd, a, f, args[0])
		},
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Output format: "+fmt.Sprint(output.AvailableFormatterNames()))
	cmd.Flags().StringVar(&f.currentDate, "current-date", "", "Reference date (YYYY-MM-DD); overrides the input file")
	cmd.Flags().IntVar(&f.horizon, "horizon", 0, "Search horizon in months (0 derives it from the input)")
	cmd.Flags().StringVar(&f.narrowing, "narrowing", "", "Bisection narrowing policy: dominance or earlier")
	cmd.Flags().StringVar(&f.saveDir, "save-dir", "", "Also write the report to a timestamped file in this directory")
	return cmd
}

func runForecast(cmd *cobra.Command, a *app, f *forecastFlags, path string) error {
	influencers, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return err
	}

	currentDate, err := resolveCurrentDate(f.currentDate, influencers.CurrentDate.Time)
	if err != nil {
		return err
	}

	settings := a.settings
	if f.horizon > 0 {
		settings.Engine.HorizonMonths = f.horizon
	}
	if f.narrowing != "" {
		settings.Engine.Narrowing = f.narrowing
	}
	opts, err := settings.EngineOptions()
	if err != nil {
		return err
	}

	format := f.format
	if format == "" {
		format = settings.Output.Format
	}
	formatter, err := output.ResolveFormatter(format)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngineWithOptions(opts)
	engine.SetLogger(a.logger)
	a.logger.Debug("running forecast",
		zap.String("input", path),
		zap.String("current_date", currentDate.Format(dateutil.DateLayout)),
		zap.Int("influencers", influencers.Count()))

	forecast, err := engine.ProcessFinancialStateInfluencers(cmd.Context(), influencers, currentDate)
	if err != nil {
		return explainForecastError(err)
	}

	if err := output.WriteReport(cmd.OutOrStdout(), forecast, formatter.Name()); err != nil {
		return err
	}

	if f.saveDir != "" {
		filename, err := output.WriteFormatted(formatter, forecast, f.saveDir)
		if err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		a.logger.Info("report saved", zap.String("file", filename))
	}
	return nil
}

// resolveCurrentDate prefers the flag, then the input file, then today.
func resolveCurrentDate(flag string, fromInput time.Time) (time.Time, error) {
	if flag != "" {
		t, err := dateutil.ParseDate(flag)
		if err != nil {
			return time.Time{}, fmt.Errorf("--current-date: %w", err)
		}
		return t, nil
	}
	if !fromInput.IsZero() {
		return fromInput, nil
	}
	return calculation.Today(), nil
}

func explainForecastError(err error) error {
	switch {
	case errors.Is(err, calculation.ErrMonthlySpendingExceedsIncome):
		return fmt.Errorf("%w\nfixed expenses cannot be covered even before any spending goal; reduce expenses or add income", err)
	case errors.Is(err, calculation.ErrUnableToProduceFinancialForecast):
		return fmt.Errorf("%w\nno feasible plan was found; drop or postpone spending goals", err)
	default:
		return err
	}
}
