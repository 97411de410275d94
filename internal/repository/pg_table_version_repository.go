package repository

import (
	"context"

	"github.com/albionmarket/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgTableVersionRepository is the PostgreSQL implementation of TableVersionRepository.
type PgTableVersionRepository struct {
	pool *pgxpool.Pool
}

// NewPgTableVersionRepository creates a PgTableVersionRepository.
func NewPgTableVersionRepository(pool *pgxpool.Pool) *PgTableVersionRepository {
	return &PgTableVersionRepository{pool: pool}
}

// Insert snapshots a table document under (table_id, version_number).
func (r *PgTableVersionRepository) Insert(ctx context.Context, version *model.TableVersion) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO table_versions (table_id, version_number, data)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		version.TableID, version.VersionNumber, version.Data,
	).Scan(&version.ID, &version.CreatedAt)
}

// ListByTableID returns all snapshots of a table, newest version first.
func (r *PgTableVersionRepository) ListByTableID(ctx context.Context, tableID string) ([]*model.TableVersion, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, table_id, version_number, data, created_at
		 FROM table_versions WHERE table_id = $1 ORDER BY version_number DESC`,
		tableID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []*model.TableVersion
	for rows.Next() {
		var v model.TableVersion
		if err := rows.Scan(&v.ID, &v.TableID, &v.VersionNumber, &v.Data, &v.CreatedAt); err != nil {
			return nil, err
		}
		versions = append(versions, &v)
	}
	return versions, rows.Err()
}
