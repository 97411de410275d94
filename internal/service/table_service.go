package service

import (
	"context"

	"github.com/albionmarket/backend/internal/model"
)

// TableService is the business-logic interface for flip tables.
type TableService interface {
	List(ctx context.Context) ([]*model.Table, error)
	GetByID(ctx context.Context, id string) (*model.Table, error)
	Create(ctx context.Context, table *model.Table) error
	Update(ctx context.Context, table *model.Table) error
	Delete(ctx context.Context, id string) error
	ListVersions(ctx context.Context, tableID string) ([]*model.TableVersion, error)
}
