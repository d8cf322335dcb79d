package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/fi-forecaster/internal/calculation"
	"github.com/rpgo/fi-forecaster/internal/config"
	"github.com/rpgo/fi-forecaster/internal/domain"
	"github.com/rpgo/fi-forecaster/internal/server"
)

const sampleInput = `current_date: 2020-01-15
monthly_expenses:
  - name: Rent
    amount: 80
    start_date: 2019-01-15
    end_date: 2021-01-15
monthly_incomes:
  - name: Pension
    amount: 100
    start_date: 2019-01-15
    end_date: 2021-01-15
  - name: Salary
    amount: 50
    start_date: 2019-01-15
    end_date: 2021-01-15
    is_undesirable: true
spending_goals:
  - name: Car
    target_date: 2020-06-15
    item_purchased:
      value: 100
      date: 2020-06-15
`

// run executes the command tree with an isolated settings file.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	settings := filepath.Join(t.TempDir(), "settings.toml")
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--settings", settings, "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestForecastCommand_JSON(t *testing.T) {
	out, err := run(t, "forecast", writeInput(t, sampleInput), "--format", "json")
	require.NoError(t, err)

	var forecast domain.FinancialForecast
	require.NoError(t, json.Unmarshal([]byte(out), &forecast))
	assert.Equal(t, "2021-01-15", forecast.FinancialIndependenceDate.String())
	assert.True(t, forecast.AllSpendingGoalsAchievable)
}

func TestForecastCommand_Console(t *testing.T) {
	out, err := run(t, "forecast", writeInput(t, sampleInput))
	require.NoError(t, err)
	assert.Contains(t, out, "FINANCIAL INDEPENDENCE FORECAST")
	assert.Contains(t, out, "Car")
}

func TestForecastCommand_Flags(t *testing.T) {
	input := writeInput(t, sampleInput)

	out, err := run(t, "forecast", input, "--format", "json", "--horizon", "6", "--narrowing", "earlier")
	require.NoError(t, err)
	var forecast domain.FinancialForecast
	require.NoError(t, json.Unmarshal([]byte(out), &forecast))
	assert.Equal(t, "2020-07-15", forecast.FinancialIndependenceDate.String())

	out, err = run(t, "forecast", input, "--format", "json", "--current-date", "2020-03-15")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &forecast))
	assert.Equal(t, "2020-03-15", forecast.CurrentDate.String())
	assert.Len(t, forecast.MonthlyCashflowDeltas, 10)
}

func TestForecastCommand_SaveDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	_, err := run(t, "forecast", writeInput(t, sampleInput), "--format", "csv", "--save-dir", dir)
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(dir, "fi_forecast_*.csv"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestForecastCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		errText string
	}{
		{"missing file", []string{"forecast", "/nonexistent.yaml"}, "failed to read file"},
		{"bad format", []string{"forecast", "INPUT", "--format", "pdf"}, "unsupported output format"},
		{"bad date", []string{"forecast", "INPUT", "--current-date", "soon"}, "--current-date"},
		{"bad policy", []string{"forecast", "INPUT", "--narrowing", "sideways"}, "unknown narrowing policy"},
		{"no args", []string{"forecast"}, "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeInput(t, sampleInput)
			for i, a := range tt.args {
				if a == "INPUT" {
					tt.args[i] = input
				}
			}
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestForecastCommand_EngineErrors(t *testing.T) {
	overdrawn := writeInput(t, sampleInput+`once_off_expenses:
  - name: Tax bill
    value: 5000
    date: 2020-02-15
`)
	_, err := run(t, "forecast", overdrawn)
	require.Error(t, err)
	assert.ErrorIs(t, err, calculation.ErrMonthlySpendingExceedsIncome)
	assert.Contains(t, err.Error(), "reduce expenses")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", writeInput(t, sampleInput))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "monthly incomes:   2 (1 undesirable)")

	_, err = run(t, "validate", writeInput(t, "current_date: 2020-01-15\n"))
	assert.Error(t, err)
}

func TestExampleCommand(t *testing.T) {
	out, err := run(t, "example", "--current-date", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "spending_goals:")

	inf, err := config.NewInputParser().LoadFromBytes([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", inf.CurrentDate.String())

	path := filepath.Join(t.TempDir(), "example.yaml")
	_, err = run(t, "example", path)
	require.NoError(t, err)
	_, err = config.NewInputParser().LoadFromFile(path)
	assert.NoError(t, err)
}

func TestExampleForecastsCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	_, err := run(t, "example", path, "--current-date", "2024-01-01")
	require.NoError(t, err)

	_, err = run(t, "forecast", path, "--format", "json")
	assert.NoError(t, err)
}

func TestSettingsCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--settings", path, "settings", "--init"})
	require.NoError(t, root.Execute())
	assert.FileExists(t, path)

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)

	out.Reset()
	root = NewRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"--settings", path, "settings"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "[engine]")
	assert.Contains(t, out.String(), `narrowing = "dominance"`)
}

func TestSettingsInvalidLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "validate", writeInput(t, sampleInput))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestServeUntilDone(t *testing.T) {
	srv := server.NewServer(server.Options{Port: 0, ShutdownTimeout: time.Second}, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- serveUntilDone(ctx, srv) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return")
	}
}
