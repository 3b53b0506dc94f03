package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// pingTimeout bounds a single database round trip.
const pingTimeout = 3 * time.Second

const (
	statusOK   = "ok"
	statusDown = "down"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaChecker reports the applied migration version against the one the
// binary was built with.
type schemaChecker interface {
	SchemaVersion(ctx context.Context) (applied, want int64, err error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	schema  schemaChecker
	version string
}

// NewHealthHandler creates a HealthHandler. schema may be nil, in which case
// only connectivity is checked.
func NewHealthHandler(db dbPinger, schema schemaChecker, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// Register mounts /live, /ready and /health. The checks sit outside the
// session and rate limit middleware.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Live)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /health", h.Health)
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
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness check: 200 when the database answers and carries
// every migration the binary knows about, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.check(r.Context())

	writeJSON(w, httpStatus(components), HealthResponse{
		Status:    overall(components),
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component detail and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.check(r.Context())

	writeJSON(w, httpStatus(components), HealthResponse{
		Status:     overall(components),
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: statusDown}
		return components
	}
	components["database"] = CompStatus{
		Status:  statusOK,
		Latency: time.Since(start).String(),
	}

	if h.schema == nil {
		return components
	}

	applied, want, err := h.schema.SchemaVersion(ctx)
	switch {
	case err != nil:
		components["schema"] = CompStatus{Status: statusDown}
	case applied < want:
		components["schema"] = CompStatus{
			Status: statusDown,
			Detail: fmt.Sprintf("applied %d, expected %d", applied, want),
		}
	default:
		components["schema"] = CompStatus{
			Status: statusOK,
			Detail: fmt.Sprintf("version %d", applied),
		}
	}
	return components
}

func overall(components map[string]CompStatus) string {
	for _, c := range components {
		if c.Status != statusOK {
			return statusDown
		}
	}
	return statusOK
}

func httpStatus(components map[string]CompStatus) int {
	if overall(components) != statusOK {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
