package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/albionmarket/backend/internal/repository"
	"github.com/albionmarket/backend/internal/service"
)

// StatisticsHandler serves the per-table and global profit statistics.
type StatisticsHandler struct {
	statsService service.StatisticsService
}

// NewStatisticsHandler creates a StatisticsHandler.
func NewStatisticsHandler(statsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statsService: statsService}
}

// TableStatistics handles GET /api/tables/{id}/statistics.
func (h *StatisticsHandler) TableStatistics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	stats, err := h.statsService.TableStatistics(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error("table statistics failed", "error", err, "table_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "statistics_failed"})
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}

// GlobalStatistics handles GET /api/statistics.
func (h *StatisticsHandler) GlobalStatistics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stats, err := h.statsService.GlobalStatistics(r.Context())
	if err != nil {
		slog.Error("global statistics failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "statistics_failed"})
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}
