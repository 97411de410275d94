package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/albionmarket/backend/internal/calc"
	"github.com/albionmarket/backend/internal/model"
	"github.com/albionmarket/backend/internal/repository"
	"golang.org/x/sync/singleflight"
)

// globalStatsTTL bounds how stale the cached cross-table aggregation may be.
// The aggregation walks every stored table, so it is the most expensive read
// in the system.
const globalStatsTTL = 30 * time.Second

// StatisticsServiceImpl implements StatisticsService. The global aggregation
// is cached with a TTL and concurrent recomputations are coalesced through a
// singleflight.Group, so a burst of dashboard loads triggers one table scan.
type StatisticsServiceImpl struct {
	tableRepo repository.TableRepository
	rates     calc.Rates

	mu      sync.RWMutex
	cached  *model.GlobalStatistics
	expires time.Time
	group   singleflight.Group
}

// NewStatisticsService creates a StatisticsServiceImpl using the live
// in-game rates.
func NewStatisticsService(tableRepo repository.TableRepository) StatisticsService {
	return &StatisticsServiceImpl{tableRepo: tableRepo, rates: calc.DefaultRates()}
}

// TableStatistics computes the per-table statistics for one table.
func (s *StatisticsServiceImpl) TableStatistics(ctx context.Context, tableID string) (*model.Statistics, error) {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	stats := calc.CalculateTableStatistics(table.Data.Items, table.IsPremium, table.OrderType, s.rates)
	return &stats, nil
}

// GlobalStatistics returns the cross-table aggregation, recomputing at most
// once per TTL window.
func (s *StatisticsServiceImpl) GlobalStatistics(ctx context.Context) (*model.GlobalStatistics, error) {
	s.mu.RLock()
	if s.cached != nil && time.Now().Before(s.expires) {
		cached := s.cached
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	result, err, _ := s.group.Do("global", func() (any, error) {
		stats, err := s.computeGlobal(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cached = stats
		s.expires = time.Now().Add(globalStatsTTL)
		s.mu.Unlock()
		return stats, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.GlobalStatistics), nil
}

// computeGlobal loads all tables, flattens their item lists, computes each
// item's profit under its own table's configuration, and merges the results
// by item name. Each item is computed as a singleton list; this repeats the
// per-item context lookup but yields the same numbers as batching one table
// at a time. The profit rankings are both drawn from the per-item
// positive-profit pool, so the least-profitable list here ranks the weakest
// gainers rather than loss-makers.
func (s *StatisticsServiceImpl) computeGlobal(ctx context.Context) (*model.GlobalStatistics, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var quantities []model.RankedQuantity
	var profits []model.RankedProfit
	for _, t := range tables {
		for _, item := range t.Data.Items {
			stats := calc.CalculateTableStatistics([]model.Item{item}, t.IsPremium, t.OrderType, s.rates)
			for _, c := range stats.ItemCalculations {
				quantities = append(quantities, model.RankedQuantity{ItemName: c.ItemName, Quantity: c.Quantity})
			}
			profits = append(profits, stats.MostProfitableItems...)
		}
	}

	return &model.GlobalStatistics{
		MostSoldItems:        mergeQuantities(quantities),
		MostProfitableItems:  mergeProfits(profits, func(a, b model.RankedProfit) bool { return a.Profit > b.Profit }),
		LeastProfitableItems: mergeProfits(profits, func(a, b model.RankedProfit) bool { return a.Profit < b.Profit }),
	}, nil
}

// mergeQuantities sums quantities by item name, first-seen order preserved
// for ties, and returns the top ten.
func mergeQuantities(quantities []model.RankedQuantity) []model.RankedQuantity {
	index := make(map[string]int)
	var merged []model.RankedQuantity
	for _, q := range quantities {
		if i, ok := index[q.ItemName]; ok {
			merged[i].Quantity += q.Quantity
		} else {
			index[q.ItemName] = len(merged)
			merged = append(merged, q)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Quantity > merged[j].Quantity })
	return truncateQuantities(merged)
}

// mergeProfits sums profits by item name and ranks them with the given order.
func mergeProfits(profits []model.RankedProfit, less func(a, b model.RankedProfit) bool) []model.RankedProfit {
	index := make(map[string]int)
	var merged []model.RankedProfit
	for _, p := range profits {
		if i, ok := index[p.ItemName]; ok {
			merged[i].Profit += p.Profit
		} else {
			index[p.ItemName] = len(merged)
			merged = append(merged, p)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool { return less(merged[i], merged[j]) })
	return truncateProfits(merged)
}

func truncateQuantities(ranked []model.RankedQuantity) []model.RankedQuantity {
	if len(ranked) > 10 {
		return ranked[:10]
	}
	return ranked
}

func truncateProfits(ranked []model.RankedProfit) []model.RankedProfit {
	if len(ranked) > 10 {
		return ranked[:10]
	}
	return ranked
}
