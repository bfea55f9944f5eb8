package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	"github.com/SscSPs/construct_erp/internal/models"
	"github.com/SscSPs/construct_erp/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStockRepository struct {
	BaseRepository
}

func newPgxStockRepository(pool *pgxpool.Pool) *PgxStockRepository {
	return &PgxStockRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StockRemote = (*PgxStockRepository)(nil)

func listStockItems(ctx context.Context, q querier) ([]domain.StockItem, error) {
	rows, err := q.Query(ctx, `
		SELECT id, project_id, name, quantity, min_quantity, unit, last_updated
		FROM stock_items
		ORDER BY created_at, id;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock items: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StockItem])
	if err != nil {
		return nil, fmt.Errorf("failed to scan stock items: %w", err)
	}
	return mapping.ToDomainStockItemSlice(ms), nil
}

func (r *PgxStockRepository) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	return listStockItems(ctx, r.Pool)
}

func (r *PgxStockRepository) CreateStockItem(ctx context.Context, item domain.StockItem) (string, error) {
	m := mapping.ToModelStockItem(item)
	var id string
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO stock_items (project_id, name, quantity, min_quantity, unit, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`, m.ProjectID, m.Name, m.Quantity, m.MinQuantity, m.Unit, m.LastUpdated).Scan(&id)
	if err != nil {
		return "", writeError(err, "failed to create stock item")
	}
	return id, nil
}

func (r *PgxStockRepository) UpdateStockItem(ctx context.Context, item domain.StockItem) error {
	m := mapping.ToModelStockItem(item)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE stock_items
		SET project_id = $2, name = $3, quantity = $4, min_quantity = $5, unit = $6, last_updated = $7
		WHERE id = $1;
	`, m.ID, m.ProjectID, m.Name, m.Quantity, m.MinQuantity, m.Unit, m.LastUpdated)
	if err != nil {
		return writeError(err, "failed to update stock item")
	}
	return expectRow(tag, "stock item", m.ID)
}

func (r *PgxStockRepository) DeleteStockItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM stock_items WHERE id = $1;`, itemID)
	if err != nil {
		return writeError(err, "failed to delete stock item")
	}
	return expectRow(tag, "stock item", itemID)
}
