package pgsql

import (
	portsrepo "github.com/SscSPs/construct_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Remote:   newPgxRemoteStore(dbPool),
		UserRepo: newPgxUserRepository(dbPool),
	}
}
