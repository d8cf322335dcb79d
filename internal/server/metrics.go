package server

import "github.com/prometheus/client_golang/prometheus"

// Forecast outcomes recorded in fiforecast_forecasts_total.
const (
	outcomeOK              = "ok"
	outcomeInvalidInput    = "invalid_input"
	outcomeSpendingTooHigh = "spending_exceeds_income"
	outcomeNoForecast      = "no_forecast"
	outcomeCancelled       = "cancelled"
	outcomeInternalError   = "error"
)

type metrics struct {
	forecasts *prometheus.CounterVec
	duration  prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		forecasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fiforecast",
			Name:      "forecasts_total",
			Help:      "Forecast requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fiforecast",
			Name:      "forecast_duration_seconds",
			Help:      "Time spent computing forecasts.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
	}
	reg.MustRegister(m.forecasts, m.duration)
	return m
}
