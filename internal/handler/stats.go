package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/service"
)

// StatsHandler handles HTTP requests for generation statistics.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleSummary handles GET /api/v1/stats?window=24h requests.
func (h *StatsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	var window time.Duration
	if raw := r.URL.Query().Get("window"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid window"))
			return
		}
		window = d
	}

	summary, err := h.service.Summary(r.Context(), window)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWindow) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		sub, _ := middleware.SubjectFromContext(r.Context())
		slog.Error("stats summary failed", "error", err, "subject", sub)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
