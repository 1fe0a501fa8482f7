package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-service/internal/ports"
)

const (
	statusUp       = "UP"
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	version  string
	now      func() time.Time
}

// NewHealthHandler creates a new HealthHandler. version is reported verbatim
// by the liveness endpoint.
func NewHealthHandler(registry ports.HealthRegistry, version string) *HealthHandler {
	return &HealthHandler{registry: registry, version: version, now: time.Now}
}

// Health handles GET /health. It always returns 200 and is not wrapped in
// the envelope.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusOK, dto.HealthResponse{
		Status:    statusUp,
		Timestamp: h.now().Format(time.RFC3339),
		Version:   h.version,
	})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
		} else {
			checks[name] = statusOK
		}
	}

	status := statusReady
	code := http.StatusOK
	if !healthy {
		status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	dto.WriteJSON(w, r, code, dto.ReadinessResponse{Status: status, Checks: checks})
}
