package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/estimmo/estimmo/internal/models"
)

const version = "1.0.0"

// Pinger is implemented by clients that can report upstream connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles GET /health with an upstream reachability check
type HealthHandler struct {
	upstream     Pinger
	agentEnabled bool
}

func NewHealthHandler(upstream Pinger, agentEnabled bool) *HealthHandler {
	return &HealthHandler{upstream: upstream, agentEnabled: agentEnabled}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}
	overallStatus := "healthy"

	// Short timeout so a slow upstream doesn't block the probe
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if h.upstream != nil {
		if err := h.upstream.Ping(ctx); err != nil {
			checks["estimate_api"] = "unavailable: " + err.Error()
			overallStatus = "degraded"
		} else {
			checks["estimate_api"] = "ok"
		}
	} else {
		checks["estimate_api"] = "disabled"
	}

	if h.agentEnabled {
		checks["agent"] = "ok"
	} else {
		checks["agent"] = "disabled"
	}

	statusCode := http.StatusOK
	if overallStatus == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	models.WriteJSON(w, statusCode, models.HealthResponse{
		Status:  overallStatus,
		Version: version,
		Checks:  checks,
	})
}
