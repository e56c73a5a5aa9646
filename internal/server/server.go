// Package server provides the opt-in observability listener. It serves only
// monitoring endpoints (Prometheus metrics and a health probe); the numeric
// operations themselves are never exposed over the network.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/numcalc/internal/logging"
)

// shutdownGrace bounds how long Shutdown waits for in-flight scrapes.
const shutdownGrace = 5 * time.Second

// Server is the observability HTTP server.
type Server struct {
	metrics *Metrics
	logger  logging.Logger
	httpSrv *http.Server
}

// New creates a Server listening on addr when Run is called.
func New(addr string, logger logging.Logger) *Server {
	s := &Server{
		metrics: NewMetrics(),
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.metricsMiddleware(s.handleMetrics))
	mux.HandleFunc("/healthz", s.metricsMiddleware(s.handleHealthz))

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("metrics listener started", logging.String("addr", s.httpSrv.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("metrics listener shutdown failed", err)
			return err
		}
		return nil
	case err := <-errCh:
		if err != nil {
			s.logger.Error("metrics listener failed", err)
		}
		return err
	}
}

// metricsMiddleware tracks active and total requests around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.CountRequest(r.URL.Path)
		next(w, r)
	}
}

// handleMetrics serves the Prometheus exposition endpoint. Read-only.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// handleHealthz reports process liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected healthz request", logging.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
