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

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRemote = (*PgxClientRepository)(nil)

func listClients(ctx context.Context, q querier) ([]domain.Client, error) {
	rows, err := q.Query(ctx, `
		SELECT id, name, type, document, email, phone, address, city, state
		FROM clients
		ORDER BY created_at, id;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, fmt.Errorf("failed to scan clients: %w", err)
	}
	return mapping.ToDomainClientSlice(ms), nil
}

// ListClients retrieves every client in insertion order.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	return listClients(ctx, r.Pool)
}

// CreateClient inserts a client and returns the generated ID.
func (r *PgxClientRepository) CreateClient(ctx context.Context, client domain.Client) (string, error) {
	m := mapping.ToModelClient(client)
	var id string
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO clients (name, type, document, email, phone, address, city, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`, m.Name, m.Type, m.Document, m.Email, m.Phone, m.Address, m.City, m.State).Scan(&id)
	if err != nil {
		return "", writeError(err, "failed to create client")
	}
	return id, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE clients
		SET name = $2, type = $3, document = $4, email = $5, phone = $6, address = $7, city = $8, state = $9
		WHERE id = $1;
	`, m.ID, m.Name, m.Type, m.Document, m.Email, m.Phone, m.Address, m.City, m.State)
	if err != nil {
		return writeError(err, "failed to update client")
	}
	return expectRow(tag, "client", m.ID)
}

// DeleteClient removes a client. Projects referencing it keep a NULL client.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE id = $1;`, clientID)
	if err != nil {
		return writeError(err, "failed to delete client")
	}
	return expectRow(tag, "client", clientID)
}
