package service

import (
	"context"

	"github.com/albionmarket/backend/internal/model"
	"github.com/albionmarket/backend/internal/repository"
	"github.com/google/uuid"
)

// TableServiceImpl implements TableService.
type TableServiceImpl struct {
	tableRepo   repository.TableRepository
	versionRepo repository.TableVersionRepository
}

// NewTableService creates a TableServiceImpl (DI: both repositories injected).
func NewTableService(tableRepo repository.TableRepository, versionRepo repository.TableVersionRepository) TableService {
	return &TableServiceImpl{tableRepo: tableRepo, versionRepo: versionRepo}
}

// List returns every table, newest first.
func (s *TableServiceImpl) List(ctx context.Context) ([]*model.Table, error) {
	return s.tableRepo.List(ctx)
}

// GetByID fetches one table by ID.
func (s *TableServiceImpl) GetByID(ctx context.Context, id string) (*model.Table, error) {
	return s.tableRepo.GetByID(ctx, id)
}

// Create stores a new table as version 1 and snapshots the initial document.
func (s *TableServiceImpl) Create(ctx context.Context, table *model.Table) error {
	if table.OrderType == "" {
		table.OrderType = model.OrderTypeSell
	}
	table.VersionNumber = 1
	prepareData(table)

	if err := s.tableRepo.Create(ctx, table); err != nil {
		return err
	}
	return s.versionRepo.Insert(ctx, &model.TableVersion{
		TableID:       table.ID,
		VersionNumber: table.VersionNumber,
		Data:          table.Data,
	})
}

// Update replaces the table document, bumps the version number, and snapshots
// the new document under the bumped version.
func (s *TableServiceImpl) Update(ctx context.Context, table *model.Table) error {
	existing, err := s.tableRepo.GetByID(ctx, table.ID)
	if err != nil {
		return err
	}
	table.VersionNumber = existing.VersionNumber + 1
	prepareData(table)

	if err := s.tableRepo.Update(ctx, table); err != nil {
		return err
	}
	return s.versionRepo.Insert(ctx, &model.TableVersion{
		TableID:       table.ID,
		VersionNumber: table.VersionNumber,
		Data:          table.Data,
	})
}

// Delete removes a table together with its version history.
func (s *TableServiceImpl) Delete(ctx context.Context, id string) error {
	return s.tableRepo.Delete(ctx, id)
}

// ListVersions returns a table's snapshots, newest version first.
func (s *TableServiceImpl) ListVersions(ctx context.Context, tableID string) ([]*model.TableVersion, error) {
	return s.versionRepo.ListByTableID(ctx, tableID)
}

// prepareData enforces the document invariants before any write: the trading
// configuration inside the document mirrors the table columns, every item has
// an ID, and the city pair inactive under the order type is zeroed so a prior
// order-type toggle can never leave stale figures behind.
func prepareData(table *model.Table) {
	table.Data.IsPremium = table.IsPremium
	table.Data.OrderType = table.OrderType
	for i := range table.Data.Items {
		if table.Data.Items[i].ID == "" {
			table.Data.Items[i].ID = uuid.New().String()
		}
		table.Data.Items[i].Normalize(table.OrderType)
	}
}
