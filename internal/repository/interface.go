package repository

import (
	"context"

	"github.com/albionmarket/backend/internal/model"
)

// DB is the interface for connection liveness checks.
type DB interface {
	Ping(ctx context.Context) error
}

// TableRepository persists flip tables. The item list travels inside the
// table's JSONB document.
type TableRepository interface {
	List(ctx context.Context) ([]*model.Table, error)
	GetByID(ctx context.Context, id string) (*model.Table, error)
	Create(ctx context.Context, table *model.Table) error
	Update(ctx context.Context, table *model.Table) error
	Delete(ctx context.Context, id string) error
}

// TableVersionRepository persists historical snapshots of table documents.
type TableVersionRepository interface {
	Insert(ctx context.Context, version *model.TableVersion) error
	ListByTableID(ctx context.Context, tableID string) ([]*model.TableVersion, error)
}
