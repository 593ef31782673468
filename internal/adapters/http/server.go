// Package http exposes the demonstration report over HTTP.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Seif10284/crabcamera/internal/report"
	"github.com/Seif10284/crabcamera/internal/stats"
	"github.com/Seif10284/crabcamera/pkg/catalog"
)

// Server serves the report in plain and JSON form and publishes request
// metrics.
type Server struct {
	catalog  catalog.Catalog
	recorder stats.Recorder
	logger   *slog.Logger
	requests *prometheus.CounterVec
	registry *prometheus.Registry
}

// NewServer builds a Server around a catalog. The recorder may be shared
// with other surfaces; metrics are registered on a private registry so
// multiple servers can coexist in one process.
func NewServer(c catalog.Catalog, recorder stats.Recorder, logger *slog.Logger) *Server {
	reg := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crabcamera_report_requests_total",
			Help: "Total report requests served, by response format.",
		},
		[]string{"format"},
	)
	reg.MustRegister(requests)

	return &Server{
		catalog:  c,
		recorder: recorder,
		logger:   logger,
		requests: requests,
		registry: reg,
	}
}

// Handler returns the chi router for the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/report", s.handleReport)
	r.Get("/report.json", s.handleReportJSON)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.count(r, "text")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := report.WritePlain(w, s.catalog); err != nil {
		s.logger.Error("failed to write report", "error", err)
	}
}

func (s *Server) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	s.count(r, "json")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.catalog); err != nil {
		s.logger.Error("failed to encode report", "error", err)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// count records the delivery on the metric and the recorder. Recorder
// failures are logged, never surfaced: the report must still be served.
func (s *Server) count(r *http.Request, format string) {
	s.requests.WithLabelValues(format).Inc()
	if _, err := s.recorder.Record(r.Context(), "http"); err != nil {
		s.logger.Warn("delivery recording failed", "error", err, "format", format)
	}
}
