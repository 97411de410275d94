package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/albionmarket/backend/internal/model"
	"github.com/albionmarket/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock StatisticsService
// ---------------------------------------------------------------------------

type mockStatisticsService struct {
	tableStatsFunc  func(ctx context.Context, tableID string) (*model.Statistics, error)
	globalStatsFunc func(ctx context.Context) (*model.GlobalStatistics, error)
}

func (m *mockStatisticsService) TableStatistics(ctx context.Context, tableID string) (*model.Statistics, error) {
	if m.tableStatsFunc != nil {
		return m.tableStatsFunc(ctx, tableID)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStatisticsService) GlobalStatistics(ctx context.Context) (*model.GlobalStatistics, error) {
	if m.globalStatsFunc != nil {
		return m.globalStatsFunc(ctx)
	}
	return &model.GlobalStatistics{}, nil
}

// ---------------------------------------------------------------------------
// GET /api/tables/{id}/statistics
// ---------------------------------------------------------------------------

func TestStatisticsHandler_TableStatistics_Success(t *testing.T) {
	mock := &mockStatisticsService{
		tableStatsFunc: func(_ context.Context, tableID string) (*model.Statistics, error) {
			if tableID != "t1" {
				t.Errorf("service called with id %q, want t1", tableID)
			}
			return &model.Statistics{TotalProfit: 420, NetProfit: 420}, nil
		},
	}
	h := NewStatisticsHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/tables/t1/statistics", nil)
	req.SetPathValue("id", "t1")
	rec := httptest.NewRecorder()
	h.TableStatistics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var stats model.Statistics
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.TotalProfit != 420 || stats.NetProfit != 420 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStatisticsHandler_TableStatistics_NotFound(t *testing.T) {
	h := NewStatisticsHandler(&mockStatisticsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/tables/missing/statistics", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.TableStatistics(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "not_found" {
		t.Errorf("error = %q, want not_found", body["error"])
	}
}

func TestStatisticsHandler_TableStatistics_ServiceError(t *testing.T) {
	mock := &mockStatisticsService{
		tableStatsFunc: func(_ context.Context, _ string) (*model.Statistics, error) {
			return nil, errors.New("db error")
		},
	}
	h := NewStatisticsHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/tables/t1/statistics", nil)
	req.SetPathValue("id", "t1")
	rec := httptest.NewRecorder()
	h.TableStatistics(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/statistics
// ---------------------------------------------------------------------------

func TestStatisticsHandler_GlobalStatistics_Success(t *testing.T) {
	mock := &mockStatisticsService{
		globalStatsFunc: func(_ context.Context) (*model.GlobalStatistics, error) {
			return &model.GlobalStatistics{
				MostSoldItems: []model.RankedQuantity{{ItemName: "Claymore", Quantity: 14}},
			}, nil
		},
	}
	h := NewStatisticsHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
	rec := httptest.NewRecorder()
	h.GlobalStatistics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var stats model.GlobalStatistics
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(stats.MostSoldItems) != 1 || stats.MostSoldItems[0].ItemName != "Claymore" {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestStatisticsHandler_GlobalStatistics_ServiceError(t *testing.T) {
	mock := &mockStatisticsService{
		globalStatsFunc: func(_ context.Context) (*model.GlobalStatistics, error) {
			return nil, errors.New("db error")
		},
	}
	h := NewStatisticsHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
	rec := httptest.NewRecorder()
	h.GlobalStatistics(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
