package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/albionmarket/backend/internal/model"
	"github.com/albionmarket/backend/internal/repository"
	"github.com/albionmarket/backend/internal/service"
)

// TableHandler serves the flip-table CRUD and version-history endpoints.
type TableHandler struct {
	tableService service.TableService
}

// NewTableHandler creates a TableHandler.
func NewTableHandler(tableService service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// List handles GET /api/tables.
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tables, err := h.tableService.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}
	if tables == nil {
		tables = []*model.Table{}
	}
	_ = json.NewEncoder(w).Encode(tables)
}

// Get handles GET /api/tables/{id}.
func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	table, err := h.tableService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}
	_ = json.NewEncoder(w).Encode(table)
}

// Create handles POST /api/tables.
func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req struct {
		TableName string          `json:"table_name"`
		CreatedBy string          `json:"created_by"`
		IsPremium bool            `json:"is_premium"`
		OrderType model.OrderType `json:"order_type"`
		Data      model.TableData `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if req.OrderType != "" && req.OrderType != model.OrderTypeBuy && req.OrderType != model.OrderTypeSell {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_order_type"})
		return
	}

	table := &model.Table{
		TableName: req.TableName,
		CreatedBy: req.CreatedBy,
		IsPremium: req.IsPremium,
		OrderType: req.OrderType,
		Data:      req.Data,
	}
	if err := h.tableService.Create(r.Context(), table); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(table)
}

// Update handles PUT /api/tables/{id}. The request replaces the table's
// document and configuration; the service bumps the version number and
// snapshots the new document.
func (h *TableHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	var req struct {
		TableName string          `json:"table_name"`
		IsPremium bool            `json:"is_premium"`
		OrderType model.OrderType `json:"order_type"`
		Data      model.TableData `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}
	if req.OrderType != model.OrderTypeBuy && req.OrderType != model.OrderTypeSell {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_order_type"})
		return
	}

	table := &model.Table{
		ID:        id,
		TableName: req.TableName,
		IsPremium: req.IsPremium,
		OrderType: req.OrderType,
		Data:      req.Data,
	}
	if err := h.tableService.Update(r.Context(), table); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "update_failed"})
		return
	}
	_ = json.NewEncoder(w).Encode(table)
}

// Delete handles DELETE /api/tables/{id}.
func (h *TableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	if err := h.tableService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Versions handles GET /api/tables/{id}/versions.
func (h *TableHandler) Versions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := r.PathValue("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	versions, err := h.tableService.ListVersions(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal_error"})
		return
	}
	if versions == nil {
		versions = []*model.TableVersion{}
	}
	_ = json.NewEncoder(w).Encode(versions)
}
