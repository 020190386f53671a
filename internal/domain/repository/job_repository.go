package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// ScheduledJobRepository puerto para trabajos diferidos persistidos.
// Lleva context porque lo consume el worker de fondo, no un handler HTTP.
type ScheduledJobRepository interface {
	Create(ctx context.Context, job *entity.ScheduledJob) error
	// Due devuelve los trabajos cuyo run_at ya pasó.
	Due(ctx context.Context, now time.Time) ([]*entity.ScheduledJob, error)
	Delete(ctx context.Context, id string) error
	DeleteByAccount(ctx context.Context, accountID string) error
}
