// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/docuflow/mockocr/internal/domain/batch"
	"github.com/docuflow/mockocr/pkg/logger"
	"github.com/docuflow/mockocr/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the engine implementation.
type Dependencies interface {
	// Scan produces the canned OCR result for an uploaded batch.
	Scan(ctx context.Context) (batch.ScanResult, error)

	// Submit produces the canned acknowledgement for a submitted item.
	Submit(ctx context.Context) (batch.Receipt, error)
}

// Server wires HTTP routes for the mock API.
type Server struct {
	healthHandler *HealthHandler
	uploadHandler *UploadHandler
	submitHandler *SubmitHandler
	statsHandler  *StatsHandler
	log           logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, log logger.Logger) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		uploadHandler: NewUploadHandler(deps),
		submitHandler: NewSubmitHandler(deps),
		statsHandler:  NewStatsHandler(statsProvider),
		log:           log,
	}
}

// Register attaches all HTTP routes to mux. Anything not registered here
// falls through to ServeMux's standard 404.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/api/health", s.instrument(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/api/upload", s.instrument(s.uploadHandler.HandleUpload, "upload"))
	mux.HandleFunc("/api/submit", s.instrument(s.submitHandler.HandleSubmit, "submit"))
	mux.HandleFunc("/api/stats", s.instrument(s.statsHandler.HandleStats, "stats"))

	// Prometheus exposition from the private registry.
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
}

// instrument chains the request-id and metrics middleware around a handler.
func (s *Server) instrument(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(MetricsMiddleware(next, endpoint), endpoint, s.log)
}

// healthResponse mirrors the health payload of the backend this server mocks.
type healthResponse struct {
	OK bool `json:"ok"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
