package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRemoteStore mirrors the six workspace resources in PostgreSQL.
type PgxRemoteStore struct {
	BaseRepository
	*PgxClientRepository
	*PgxProjectRepository
	*PgxTransactionRepository
	*PgxStockRepository
	*PgxPurchaseOrderRepository
	*PgxDailyLogRepository
}

func newPgxRemoteStore(pool *pgxpool.Pool) *PgxRemoteStore {
	return &PgxRemoteStore{
		BaseRepository:             BaseRepository{Pool: pool},
		PgxClientRepository:        newPgxClientRepository(pool),
		PgxProjectRepository:       newPgxProjectRepository(pool),
		PgxTransactionRepository:   newPgxTransactionRepository(pool),
		PgxStockRepository:         newPgxStockRepository(pool),
		PgxPurchaseOrderRepository: newPgxPurchaseOrderRepository(pool),
		PgxDailyLogRepository:      newPgxDailyLogRepository(pool),
	}
}

var _ portsrepo.RemoteStore = (*PgxRemoteStore)(nil)

// FetchAll reads the six collections from one consistent snapshot.
func (r *PgxRemoteStore) FetchAll(ctx context.Context) (domain.Snapshot, error) {
	tx, err := r.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return domain.Snapshot{}, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin snapshot transaction", err)
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var snap domain.Snapshot
	if snap.Clients, err = listClients(ctx, tx); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Projects, err = listProjects(ctx, tx); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.Transactions, err = listTransactions(ctx, tx); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.StockItems, err = listStockItems(ctx, tx); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.PurchaseOrders, err = listPurchaseOrders(ctx, tx); err != nil {
		return domain.Snapshot{}, err
	}
	if snap.DailyLogs, err = listDailyLogs(ctx, tx); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}
