package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.ScheduledJobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto ScheduledJobRepository sobre PostgreSQL.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador de trabajos diferidos.
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

// Create persiste un trabajo diferido.
func (r *JobRepo) Create(ctx context.Context, job *entity.ScheduledJob) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO scheduled_jobs (id, kind, account_id, run_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		job.ID, job.Kind, job.AccountID, job.RunAt, job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scheduled job: %w", err)
	}
	return nil
}

// Due devuelve los trabajos cuyo run_at ya pasó, del más vencido al más nuevo.
func (r *JobRepo) Due(ctx context.Context, now time.Time) ([]*entity.ScheduledJob, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, kind, account_id, run_at, created_at
		 FROM scheduled_jobs WHERE run_at <= $1 ORDER BY run_at`,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("list due jobs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ScheduledJob
	for rows.Next() {
		var j entity.ScheduledJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.AccountID, &j.RunAt, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan scheduled job: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// Delete borra un trabajo ejecutado.
func (r *JobRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM scheduled_jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete scheduled job: %w", err)
	}
	return nil
}

// DeleteByAccount cancela los trabajos pendientes de la cuenta (reactivación).
func (r *JobRepo) DeleteByAccount(ctx context.Context, accountID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM scheduled_jobs WHERE account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("delete scheduled jobs: %w", err)
	}
	return nil
}
