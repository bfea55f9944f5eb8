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

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRemote = (*PgxTransactionRepository)(nil)

func listTransactions(ctx context.Context, q querier) ([]domain.Transaction, error) {
	rows, err := q.Query(ctx, `
		SELECT id, project_id, description, amount, type, category, date, status
		FROM transactions
		ORDER BY date DESC, created_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// ListTransactions retrieves the ledger newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return listTransactions(ctx, r.Pool)
}

func insertTransaction(ctx context.Context, q querier, txn domain.Transaction) (string, error) {
	m := mapping.ToModelTransaction(txn)
	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO transactions (project_id, description, amount, type, category, date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`, m.ProjectID, m.Description, m.Amount, m.Type, m.Category, m.Date, m.Status).Scan(&id)
	if err != nil {
		return "", writeError(err, "failed to create transaction")
	}
	return id, nil
}

// CreateTransaction inserts an entry. A paid expense bumps the project's spent in the trigger.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (string, error) {
	return insertTransaction(ctx, r.Pool, txn)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET project_id = $2, description = $3, amount = $4, type = $5, category = $6, date = $7, status = $8
		WHERE id = $1;
	`, m.ID, m.ProjectID, m.Description, m.Amount, m.Type, m.Category, m.Date, m.Status)
	if err != nil {
		return writeError(err, "failed to update transaction")
	}
	return expectRow(tag, "transaction", m.ID)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, transactionID)
	if err != nil {
		return writeError(err, "failed to delete transaction")
	}
	return expectRow(tag, "transaction", transactionID)
}
