package api

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
)

// HealthResponse provides detailed health information
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Started   string `json:"started"`
	Uptime    string `json:"uptime"`
	Version   string `json:"version,omitempty"`
	Store     string `json:"store,omitempty"`
	Tasks     int    `json:"tasks"`
}

// Health handles GET /healthz. It reports 503 when the store cannot be read.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: now.UTC().Format(time.RFC3339),
		Started:   humanize.RelTime(h.started, now, "ago", "from now"),
		Uptime:    now.Sub(h.started).Round(time.Second).String(),
		Version:   h.version,
		Store:     h.storeDriver,
	}

	count, err := h.service.CountTasks(r.Context())
	if err != nil {
		h.logger.WarnContext(r.Context(), "health check could not count tasks", "error", err)
		response.Status = "unhealthy"
		writeJSON(w, h.logger, http.StatusServiceUnavailable, response)
		return
	}
	response.Tasks = count

	writeJSON(w, h.logger, http.StatusOK, response)
}
