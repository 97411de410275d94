package service

import (
	"context"
	"errors"
	"testing"

	"github.com/albionmarket/backend/internal/model"
	"github.com/albionmarket/backend/internal/repository"
)

// sellItem builds an item for a sell-order table: one city purchase plus a
// black-market disposal.
func sellItem(name string, bmPrice float64, bmQty int, cityPrice float64, cityQty int) model.Item {
	return model.Item{
		ID:   "id-" + name,
		Name: name,
		CaerleonBlackMarket: model.BlackMarketData{
			BuyPrice:     bmPrice,
			SellQuantity: bmQty,
		},
		Cities: []model.CityData{{Name: "Martlock", SellPrice: cityPrice, SellQuantity: cityQty}},
	}
}

// ---------------------------------------------------------------------------
// TableStatistics
// ---------------------------------------------------------------------------

func TestStatisticsService_TableStatistics_UsesTableConfig(t *testing.T) {
	ctx := context.Background()
	tableRepo := &mockTableRepository{
		getByIDFunc: func(_ context.Context, id string) (*model.Table, error) {
			return &model.Table{
				ID:        id,
				IsPremium: true,
				OrderType: model.OrderTypeSell,
				Data: model.TableData{
					Items: []model.Item{sellItem("Claymore", 100, 10, 50, 10)},
				},
			}, nil
		},
	}
	svc := NewStatisticsService(tableRepo)

	stats, err := svc.TableStatistics(ctx, "t1")
	if err != nil {
		t.Fatalf("TableStatistics: %v", err)
	}
	if len(stats.ItemCalculations) != 1 {
		t.Fatalf("expected 1 calculation, got %d", len(stats.ItemCalculations))
	}
	c := stats.ItemCalculations[0]
	// gross 1000, premium tax 40, no setup fee, cost 500
	if c.TotalRevenue != 960 || c.TotalCost != 500 || c.Profit != 460 {
		t.Errorf("unexpected calculation: %+v", c)
	}
}

func TestStatisticsService_TableStatistics_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewStatisticsService(&mockTableRepository{})

	_, err := svc.TableStatistics(ctx, "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GlobalStatistics
// ---------------------------------------------------------------------------

func TestStatisticsService_GlobalStatistics_MergesByName(t *testing.T) {
	ctx := context.Background()
	// Two tables both tracking "Claymore" plus one "Bow"; quantities and
	// profits must merge under one Claymore entry.
	tables := []*model.Table{
		{
			ID:        "t1",
			IsPremium: false,
			OrderType: model.OrderTypeSell,
			Data: model.TableData{
				Items: []model.Item{sellItem("Claymore", 200, 10, 100, 10)}, // profit 1840-1000=840
			},
		},
		{
			ID:        "t2",
			IsPremium: false,
			OrderType: model.OrderTypeSell,
			Data: model.TableData{
				Items: []model.Item{
					sellItem("Claymore", 150, 4, 100, 4), // profit 552-400=152
					sellItem("Bow", 300, 2, 100, 2),      // profit 552-200=352
				},
			},
		},
	}
	tableRepo := &mockTableRepository{
		listFunc: func(_ context.Context) ([]*model.Table, error) { return tables, nil },
	}
	svc := NewStatisticsService(tableRepo)

	got, err := svc.GlobalStatistics(ctx)
	if err != nil {
		t.Fatalf("GlobalStatistics: %v", err)
	}

	if len(got.MostSoldItems) != 2 {
		t.Fatalf("mostSoldItems = %+v, want 2 merged entries", got.MostSoldItems)
	}
	if got.MostSoldItems[0].ItemName != "Claymore" || got.MostSoldItems[0].Quantity != 14 {
		t.Errorf("mostSoldItems[0] = %+v, want Claymore/14", got.MostSoldItems[0])
	}

	if len(got.MostProfitableItems) != 2 {
		t.Fatalf("mostProfitableItems = %+v, want 2 merged entries", got.MostProfitableItems)
	}
	if got.MostProfitableItems[0].ItemName != "Claymore" {
		t.Errorf("mostProfitableItems[0] = %+v, want merged Claymore first", got.MostProfitableItems[0])
	}
	wantClaymore := 840.0 + 152.0
	if diff := got.MostProfitableItems[0].Profit - wantClaymore; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("merged Claymore profit = %v, want %v", got.MostProfitableItems[0].Profit, wantClaymore)
	}

	// The least-profitable ranking draws from the same positive-profit pool,
	// ascending: the weakest gainer comes first.
	if len(got.LeastProfitableItems) != 2 || got.LeastProfitableItems[0].ItemName != "Bow" {
		t.Errorf("leastProfitableItems = %+v, want Bow first", got.LeastProfitableItems)
	}
}

func TestStatisticsService_GlobalStatistics_EachItemUsesParentConfig(t *testing.T) {
	ctx := context.Background()
	buyTableItem := model.Item{
		ID:   "i1",
		Name: "Cape",
		CaerleonBlackMarket: model.BlackMarketData{BuyPrice: 100, SellQuantity: 1},
		Cities: []model.CityData{{Name: "Lymhurst", BuyPrice: 10, BuyQuantity: 5}},
	}
	tables := []*model.Table{
		{ID: "t1", IsPremium: true, OrderType: model.OrderTypeBuy, Data: model.TableData{Items: []model.Item{buyTableItem}}},
	}
	tableRepo := &mockTableRepository{
		listFunc: func(_ context.Context) ([]*model.Table, error) { return tables, nil },
	}
	svc := NewStatisticsService(tableRepo)

	got, err := svc.GlobalStatistics(ctx)
	if err != nil {
		t.Fatalf("GlobalStatistics: %v", err)
	}

	// Under the parent table's buy_order config the quantity comes from the
	// buy pair.
	if len(got.MostSoldItems) != 1 || got.MostSoldItems[0].Quantity != 5 {
		t.Errorf("mostSoldItems = %+v, want Cape/5", got.MostSoldItems)
	}
	// net 96 - cost 51.25 = 44.75 under premium buy-order config
	if len(got.MostProfitableItems) != 1 {
		t.Fatalf("mostProfitableItems = %+v, want 1 entry", got.MostProfitableItems)
	}
	if diff := got.MostProfitableItems[0].Profit - 44.75; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("profit = %v, want 44.75", got.MostProfitableItems[0].Profit)
	}
}

func TestStatisticsService_GlobalStatistics_CachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	calls := 0
	tableRepo := &mockTableRepository{
		listFunc: func(_ context.Context) ([]*model.Table, error) {
			calls++
			return nil, nil
		},
	}
	svc := NewStatisticsService(tableRepo)

	if _, err := svc.GlobalStatistics(ctx); err != nil {
		t.Fatalf("first GlobalStatistics: %v", err)
	}
	if _, err := svc.GlobalStatistics(ctx); err != nil {
		t.Fatalf("second GlobalStatistics: %v", err)
	}
	if calls != 1 {
		t.Errorf("table scan ran %d times within TTL, want 1", calls)
	}
}

func TestStatisticsService_GlobalStatistics_RepositoryError(t *testing.T) {
	ctx := context.Background()
	tableRepo := &mockTableRepository{
		listFunc: func(_ context.Context) ([]*model.Table, error) {
			return nil, errors.New("db error")
		},
	}
	svc := NewStatisticsService(tableRepo)

	if _, err := svc.GlobalStatistics(ctx); err == nil {
		t.Error("expected error from GlobalStatistics, got nil")
	}
}
