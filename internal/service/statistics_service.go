package service

import (
	"context"

	"github.com/albionmarket/backend/internal/model"
)

// StatisticsService computes profit statistics from stored tables.
type StatisticsService interface {
	// TableStatistics runs the profit reducer over one table's items with
	// that table's premium/order-type configuration.
	TableStatistics(ctx context.Context, tableID string) (*model.Statistics, error)
	// GlobalStatistics aggregates across every stored table, merging
	// quantities and profits by item name.
	GlobalStatistics(ctx context.Context) (*model.GlobalStatistics, error)
}
