package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/fi-forecaster/internal/calculation"
	"github.com/rpgo/fi-forecaster/internal/config"
	"github.com/rpgo/fi-forecaster/internal/logging"
)

func TestEndToEndForecast(t *testing.T) {
	parser := config.NewInputParser()
	inf, err := parser.LoadFromFile("../testdata/influencers.yaml")
	require.NoError(t, err)
	assert.Equal(t, 4, inf.Count())

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.NewNop())

	forecast, err := engine.ProcessFinancialStateInfluencers(context.Background(), inf, inf.CurrentDate.Time)
	require.NoError(t, err)
	assert.True(t, forecast.AllSpendingGoalsAchievable)
	assert.Equal(t, "2021-01-15", forecast.FinancialIndependenceDate.String())
	assert.Equal(t, 740.0, forecast.FinalCashBalance())
}

func TestEndToEndForecast_SettingsDriveEngine(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Engine.HorizonMonths = 6
	settings.Engine.Narrowing = "earlier"

	opts, err := settings.EngineOptions()
	require.NoError(t, err)

	inf, err := config.NewInputParser().LoadFromFile("../testdata/influencers.yaml")
	require.NoError(t, err)

	forecast, err := calculation.NewCalculationEngineWithOptions(opts).
		ProcessFinancialStateInfluencers(context.Background(), inf, inf.CurrentDate.Time)
	require.NoError(t, err)
	assert.Equal(t, "2020-07-15", forecast.FinancialIndependenceDate.String())
}

func TestEndToEndForecast_ExampleInput(t *testing.T) {
	parser := config.NewInputParser()
	today := calculation.Today()
	inf := parser.CreateExampleInfluencers(today)
	require.NoError(t, parser.ValidateInfluencers(inf))

	forecast, err := calculation.ProcessFinancialStateInfluencers(inf, today)
	require.NoError(t, err)
	assert.NotEmpty(t, forecast.MonthlyCashflowDeltas)
	assert.Len(t, forecast.SpendingGoals, 2)
}
