package repository

import (
	"context"
	"errors"

	"github.com/albionmarket/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgTableRepository is the PostgreSQL implementation of TableRepository.
type PgTableRepository struct {
	pool *pgxpool.Pool
}

// NewPgTableRepository creates a PgTableRepository.
func NewPgTableRepository(pool *pgxpool.Pool) *PgTableRepository {
	return &PgTableRepository{pool: pool}
}

// List returns every table, newest first.
func (r *PgTableRepository) List(ctx context.Context) ([]*model.Table, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, table_name, created_by, is_premium, order_type, data, version_number, created_at, updated_at
		 FROM tables ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []*model.Table
	for rows.Next() {
		var t model.Table
		if err := rows.Scan(&t.ID, &t.TableName, &t.CreatedBy, &t.IsPremium, &t.OrderType, &t.Data, &t.VersionNumber, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tables = append(tables, &t)
	}
	return tables, rows.Err()
}

// GetByID fetches one table by ID. Returns ErrNotFound when it does not exist.
func (r *PgTableRepository) GetByID(ctx context.Context, id string) (*model.Table, error) {
	var t model.Table
	err := r.pool.QueryRow(ctx,
		`SELECT id, table_name, created_by, is_premium, order_type, data, version_number, created_at, updated_at
		 FROM tables WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.TableName, &t.CreatedBy, &t.IsPremium, &t.OrderType, &t.Data, &t.VersionNumber, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a table and fills in its generated ID and timestamps.
func (r *PgTableRepository) Create(ctx context.Context, table *model.Table) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO tables (table_name, created_by, is_premium, order_type, data, version_number)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		table.TableName, table.CreatedBy, table.IsPremium, table.OrderType, table.Data, table.VersionNumber,
	).Scan(&table.ID, &table.CreatedAt, &table.UpdatedAt)
}

// Update replaces the table's document, configuration, and version number.
// Returns ErrNotFound when the table does not exist.
func (r *PgTableRepository) Update(ctx context.Context, table *model.Table) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tables
		 SET table_name = $1, data = $2, is_premium = $3, order_type = $4, version_number = $5, updated_at = NOW()
		 WHERE id = $6`,
		table.TableName, table.Data, table.IsPremium, table.OrderType, table.VersionNumber, table.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a table; its version snapshots cascade. Returns ErrNotFound
// when the table does not exist.
func (r *PgTableRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
