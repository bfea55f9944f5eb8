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

type PgxDailyLogRepository struct {
	BaseRepository
}

func newPgxDailyLogRepository(pool *pgxpool.Pool) *PgxDailyLogRepository {
	return &PgxDailyLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DailyLogRemote = (*PgxDailyLogRepository)(nil)

func listDailyLogs(ctx context.Context, q querier) ([]domain.DailyLog, error) {
	rows, err := q.Query(ctx, `
		SELECT id, project_id, author_id, content, date, weather, images
		FROM daily_logs
		ORDER BY date DESC, created_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily logs: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DailyLog])
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily logs: %w", err)
	}
	return mapping.ToDomainDailyLogSlice(ms), nil
}

func (r *PgxDailyLogRepository) ListDailyLogs(ctx context.Context) ([]domain.DailyLog, error) {
	return listDailyLogs(ctx, r.Pool)
}

func (r *PgxDailyLogRepository) CreateDailyLog(ctx context.Context, log domain.DailyLog) (string, error) {
	m := mapping.ToModelDailyLog(log)
	var id string
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO daily_logs (project_id, author_id, content, date, weather, images)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`, m.ProjectID, m.AuthorID, m.Content, m.Date, m.Weather, m.Images).Scan(&id)
	if err != nil {
		return "", writeError(err, "failed to create daily log")
	}
	return id, nil
}

// UpdateDailyLog writes content, weather, date and images. Project and author never change.
func (r *PgxDailyLogRepository) UpdateDailyLog(ctx context.Context, log domain.DailyLog) error {
	m := mapping.ToModelDailyLog(log)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE daily_logs
		SET content = $2, weather = $3, date = $4, images = $5
		WHERE id = $1;
	`, m.ID, m.Content, m.Weather, m.Date, m.Images)
	if err != nil {
		return writeError(err, "failed to update daily log")
	}
	return expectRow(tag, "daily log", m.ID)
}

func (r *PgxDailyLogRepository) DeleteDailyLog(ctx context.Context, logID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM daily_logs WHERE id = $1;`, logID)
	if err != nil {
		return writeError(err, "failed to delete daily log")
	}
	return expectRow(tag, "daily log", logID)
}
