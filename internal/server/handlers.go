package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rpgo/fi-forecaster/internal/calculation"
	"github.com/rpgo/fi-forecaster/internal/domain"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var influencers domain.FinancialStateInfluencers
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&influencers); err != nil {
		s.metrics.forecasts.WithLabelValues(outcomeInvalidInput).Inc()
		writeError(w, http.StatusBadRequest, "malformed request body: "+err.Error(), reqID)
		return
	}
	if err := s.parser.ValidateInfluencers(&influencers); err != nil {
		s.metrics.forecasts.WithLabelValues(outcomeInvalidInput).Inc()
		writeError(w, http.StatusBadRequest, err.Error(), reqID)
		return
	}

	currentDate := influencers.CurrentDate.Time
	if currentDate.IsZero() {
		currentDate = calculation.Today()
	}

	engine := *s.engine
	engine.SetLogger(s.logger.With(zap.String("request_id", reqID)))

	start := time.Now()
	forecast, err := engine.ProcessFinancialStateInfluencers(r.Context(), &influencers, currentDate)
	s.metrics.duration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		s.metrics.forecasts.WithLabelValues(outcomeOK).Inc()
		writeJSON(w, http.StatusOK, forecast)
	case errors.Is(err, calculation.ErrMonthlySpendingExceedsIncome):
		s.metrics.forecasts.WithLabelValues(outcomeSpendingTooHigh).Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error(), reqID)
	case errors.Is(err, calculation.ErrUnableToProduceFinancialForecast):
		s.metrics.forecasts.WithLabelValues(outcomeNoForecast).Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error(), reqID)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.metrics.forecasts.WithLabelValues(outcomeCancelled).Inc()
		s.logger.Warn("forecast abandoned", zap.Error(err), zap.String("request_id", reqID))
		writeError(w, http.StatusServiceUnavailable, "forecast cancelled: "+err.Error(), reqID)
	default:
		s.metrics.forecasts.WithLabelValues(outcomeInternalError).Inc()
		s.logger.Error("forecast failed", zap.Error(err), zap.String("request_id", reqID))
		writeError(w, http.StatusInternalServerError, "internal error", reqID)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, reqID string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: reqID})
}
