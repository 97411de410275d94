package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/albionmarket/backend/internal/export"
	"github.com/albionmarket/backend/internal/repository"
	"github.com/albionmarket/backend/internal/service"
)

// ExportHandler serves CSV downloads of a table's profit calculations.
type ExportHandler struct {
	statsService service.StatisticsService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(statsService service.StatisticsService) *ExportHandler {
	return &ExportHandler{statsService: statsService}
}

// ExportCSV handles GET /api/tables/{id}/export.
func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	stats, err := h.statsService.TableStatistics(r.Context(), id)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error("export failed", "error", err, "table_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "export_failed"})
		return
	}

	out, err := export.TableCSV(stats.ItemCalculations)
	if err != nil {
		slog.Error("csv render failed", "error", err, "table_id", id)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "export_failed"})
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "table-"+id+".csv"))
	_, _ = w.Write(out)
}
