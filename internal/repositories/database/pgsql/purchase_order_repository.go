package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	"github.com/SscSPs/construct_erp/internal/models"
	"github.com/SscSPs/construct_erp/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPurchaseOrderRepository struct {
	BaseRepository
}

func newPgxPurchaseOrderRepository(pool *pgxpool.Pool) *PgxPurchaseOrderRepository {
	return &PgxPurchaseOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseOrderRemote = (*PgxPurchaseOrderRepository)(nil)

func listPurchaseOrders(ctx context.Context, q querier) ([]domain.PurchaseOrder, error) {
	rows, err := q.Query(ctx, `
		SELECT id, project_id, requester_id, item_name, quantity, unit_price_estimate, total_estimate, status, created_at
		FROM purchase_orders
		ORDER BY created_at DESC, id;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PurchaseOrder])
	if err != nil {
		return nil, fmt.Errorf("failed to scan purchase orders: %w", err)
	}
	return mapping.ToDomainPurchaseOrderSlice(ms), nil
}

// ListPurchaseOrders retrieves every order, newest first.
func (r *PgxPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	return listPurchaseOrders(ctx, r.Pool)
}

// CreatePurchaseOrder stores the order with its request date as created_at.
func (r *PgxPurchaseOrderRepository) CreatePurchaseOrder(ctx context.Context, order domain.PurchaseOrder) (string, error) {
	m := mapping.ToModelPurchaseOrder(order)
	var id string
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO purchase_orders (project_id, requester_id, item_name, quantity, unit_price_estimate, total_estimate, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`, m.ProjectID, m.RequesterID, m.ItemName, m.Quantity, m.UnitPriceEstimate, m.TotalEstimate, m.Status, m.CreatedAt).Scan(&id)
	if err != nil {
		return "", writeError(err, "failed to create purchase order")
	}
	return id, nil
}

// UpdatePurchaseOrderStatus changes only the status column.
func (r *PgxPurchaseOrderRepository) UpdatePurchaseOrderStatus(ctx context.Context, orderID string, status domain.PurchaseOrderStatus) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE purchase_orders SET status = $2 WHERE id = $1;`, orderID, string(status))
	if err != nil {
		return writeError(err, "failed to update purchase order status")
	}
	return expectRow(tag, "purchase order", orderID)
}

// ApprovePurchaseOrder flips a PENDING order to PURCHASED and inserts its expense in one transaction.
func (r *PgxPurchaseOrderRepository) ApprovePurchaseOrder(ctx context.Context, orderID string, expense domain.Transaction) (string, error) {
	var expenseID string
	err := inTx(ctx, &r.BaseRepository, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE purchase_orders SET status = $2
			WHERE id = $1 AND status = $3;
		`, orderID, string(domain.PurchaseOrderPurchased), string(domain.PurchaseOrderPending))
		if err != nil {
			return writeError(err, "failed to approve purchase order")
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewConflictError(fmt.Sprintf("purchase order %s is missing or not pending", orderID))
		}
		expenseID, err = insertTransaction(ctx, tx, expense)
		return err
	})
	if err != nil {
		return "", err
	}
	return expenseID, nil
}

func (r *PgxPurchaseOrderRepository) DeletePurchaseOrder(ctx context.Context, orderID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1;`, orderID)
	if err != nil {
		return writeError(err, "failed to delete purchase order")
	}
	return expectRow(tag, "purchase order", orderID)
}
