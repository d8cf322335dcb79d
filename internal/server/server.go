// Package server exposes the forecasting engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rpgo/fi-forecaster/internal/calculation"
	"github.com/rpgo/fi-forecaster/internal/config"
	"github.com/rpgo/fi-forecaster/internal/logging"
)

// maxRequestBytes bounds the size of a forecast request body.
const maxRequestBytes = 1 << 20

// Options configures a Server.
type Options struct {
	Port            int
	ShutdownTimeout time.Duration
}

// Server serves POST /forecast, /healthz and /metrics.
type Server struct {
	srv             *http.Server
	router          http.Handler
	port            int
	shutdownTimeout time.Duration

	engine  *calculation.CalculationEngine
	parser  *config.InputParser
	logger  *logging.Logger
	metrics *metrics
}

// NewServer wires the routes. Metrics are kept in a private registry so that
// several servers can coexist in one process.
func NewServer(opts Options, engine *calculation.CalculationEngine, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Server{
		port:            opts.Port,
		shutdownTimeout: opts.ShutdownTimeout,
		engine:          engine,
		parser:          config.NewInputParser(),
		logger:          logger.Named("http"),
		metrics:         newMetrics(registry),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /forecast", s.handleForecast)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	s.router = requestID(s.logRequests(mux))

	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start blocks serving requests until Stop is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.Int("port", s.port))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests, waiting at most the shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

// Handler returns the root handler, including middleware.
func (s *Server) Handler() http.Handler {
	return s.router
}
