// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/okian/tripace/internal/app"
	"github.com/okian/tripace/internal/domain/pace"
	"github.com/okian/tripace/internal/domain/race"
	"github.com/okian/tripace/pkg/logger"
)

const defaultMaxBodyBytes = 1 << 16

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the calculator implementation.
type Dependencies interface {
	Calculate(ctx context.Context, req service.Request) (*service.Result, error)
	Categories() []race.Entry
	DefaultCategory() race.Category
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	metricsHandler    *MetricsHandler
	statsHandler      *StatsHandler
	estimateHandler   *EstimateHandler
	categoriesHandler *CategoriesHandler
}

// ServerOption configures NewServer.
type ServerOption func(*serverSettings)

type serverSettings struct {
	maxBodyBytes int64
	logger       logger.Logger
}

// WithMaxBodyBytes caps request bodies of POST /estimate.
func WithMaxBodyBytes(n int64) ServerOption {
	return func(s *serverSettings) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithLogger sets the logger used for server-side failures.
func WithLogger(l logger.Logger) ServerOption {
	return func(s *serverSettings) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := serverSettings{maxBodyBytes: defaultMaxBodyBytes}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return &Server{
		healthHandler:     NewHealthHandler(),
		metricsHandler:    NewMetricsHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		estimateHandler:   NewEstimateHandler(deps, s.maxBodyBytes, s.logger),
		categoriesHandler: NewCategoriesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.metricsHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/categories", MetricsMiddleware(s.categoriesHandler.HandleGetCategories, "categories"))
	mux.HandleFunc("/estimate", MetricsMiddleware(RequestIDMiddleware(s.estimateHandler.HandlePostEstimate), "estimate"))
}

type errorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []*pace.ValidationError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeMethodNotAllowed answers with 405 and the allowed method.
func writeMethodNotAllowed(w http.ResponseWriter, op, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind(op, ErrMethod))
}
