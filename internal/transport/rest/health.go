package rest

import (
	"context"
	"net/http"
	"time"
)

const dbPingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the health and readiness probes.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

type componentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]componentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// Ready is the readiness probe. Pings the database: 200 if reachable, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbPingTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, healthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports per-component status with measured database latency and the
// build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbPingTimeout)
	defer cancel()

	resp := healthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: map[string]componentStatus{},
		Timestamp:  time.Now(),
	}
	code := http.StatusOK

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Status = "down"
		resp.Components["database"] = componentStatus{Status: "down"}
		code = http.StatusServiceUnavailable
	} else {
		resp.Components["database"] = componentStatus{
			Status:  "ok",
			Latency: time.Since(start).String(),
		}
	}

	writeJSON(w, code, resp)
}
