// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"runtime"

	"github.com/okian/tripace/pkg/metrics"
)

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler handles stats requests.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, "api.stats", http.MethodGet)
		return
	}
	goroutines := runtime.NumGoroutine()
	metrics.UpdateSystemGoroutineCount(goroutines)

	stats := h.statsProvider.GetStats()
	stats["goroutines"] = goroutines
	writeJSON(w, http.StatusOK, stats)
}
