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

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) *PgxProjectRepository {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRemote = (*PgxProjectRepository)(nil)

func listProjects(ctx context.Context, q querier) ([]domain.Project, error) {
	rows, err := q.Query(ctx, `
		SELECT id, client_id, name, address, status, budget, spent, start_date, completion_date, progress, image_url
		FROM projects
		ORDER BY created_at, id;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Project])
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}
	return mapping.ToDomainProjectSlice(ms), nil
}

func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return listProjects(ctx, r.Pool)
}

// CreateProject inserts a project with its initial spent and returns the generated ID.
func (r *PgxProjectRepository) CreateProject(ctx context.Context, project domain.Project) (string, error) {
	m := mapping.ToModelProject(project)
	var id string
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO projects (client_id, name, address, status, budget, spent, start_date, completion_date, progress, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`, m.ClientID, m.Name, m.Address, m.Status, m.Budget, m.Spent, m.StartDate, m.CompletionDate, m.Progress, m.ImageURL).Scan(&id)
	if err != nil {
		return "", writeError(err, "failed to create project")
	}
	return id, nil
}

// UpdateProject writes every column except spent, which the trigger owns.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE projects
		SET client_id = $2, name = $3, address = $4, status = $5, budget = $6,
		    start_date = $7, completion_date = $8, progress = $9, image_url = $10
		WHERE id = $1;
	`, m.ID, m.ClientID, m.Name, m.Address, m.Status, m.Budget, m.StartDate, m.CompletionDate, m.Progress, m.ImageURL)
	if err != nil {
		return writeError(err, "failed to update project")
	}
	return expectRow(tag, "project", m.ID)
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE id = $1;`, projectID)
	if err != nil {
		return writeError(err, "failed to delete project")
	}
	return expectRow(tag, "project", projectID)
}
