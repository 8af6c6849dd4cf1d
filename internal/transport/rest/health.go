package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Abd-Elsattar/Talaqi-Platform-sub000/internal/service/notify"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// dispatcherStats exposes the notification dispatcher counters.
type dispatcherStats interface {
	Stats() notify.Stats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db         dbPinger
	dispatcher dispatcherStats
	version    string
}

// NewHealthHandler creates a HealthHandler. dispatcher may be nil when
// notifications are disabled.
func NewHealthHandler(db dbPinger, dispatcher dispatcherStats, version string) *HealthHandler {
	return &HealthHandler{db: db, dispatcher: dispatcher, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Live answers the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready answers the readiness check. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: DB ping with latency, version and the
// notification dispatcher counters. A saturated queue reports "degraded"
// without failing the check.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["database"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["database"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	if h.dispatcher != nil {
		stats := h.dispatcher.Stats()
		comp := CompStatus{Status: "ok", Details: stats}
		if stats.QueueCap > 0 && stats.QueueLen >= stats.QueueCap {
			comp.Status = "degraded"
		}
		components["notifications"] = comp
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
