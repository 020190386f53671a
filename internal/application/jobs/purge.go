// Package jobs ejecuta los trabajos diferidos persistidos en la base de datos.
package jobs

import (
	"context"
	"time"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
	"github.com/jhoicas/Mercado-api/pkg/logger"
	"github.com/sethvargo/go-retry"
)

const (
	// pollInterval frecuencia del barrido de trabajos vencidos.
	pollInterval = time.Minute
	// retryBase backoff inicial ante errores transitorios de la DB.
	retryBase = 2 * time.Second
	// retryMax intentos por trabajo antes de dejarlo para el próximo barrido.
	retryMax = 5
)

// Worker barre periódicamente los trabajos vencidos y los ejecuta. Como los
// trabajos viven en la base de datos, el primer barrido tras el arranque
// retoma los que vencieron mientras el proceso estuvo caído.
type Worker struct {
	jobs     repository.ScheduledJobRepository
	accounts repository.AccountRepository
	log      *logger.Logger
}

// NewWorker construye el worker de purga.
func NewWorker(jobs repository.ScheduledJobRepository, accounts repository.AccountRepository, log *logger.Logger) *Worker {
	return &Worker{jobs: jobs, accounts: accounts, log: log}
}

// Run bloquea ejecutando barridos hasta que ctx se cancele. El primer barrido
// es inmediato para recuperar trabajos vencidos durante una caída.
func (w *Worker) Run(ctx context.Context) {
	w.Sweep(ctx)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep ejecuta todos los trabajos vencidos. Un trabajo que falla tras los
// reintentos queda en la tabla y se retoma en el próximo barrido.
func (w *Worker) Sweep(ctx context.Context) {
	due, err := w.jobs.Due(ctx, time.Now())
	if err != nil {
		w.log.Error().Err(err).Msg("no se pudieron leer los trabajos vencidos")
		return
	}
	for _, job := range due {
		if err := w.execute(ctx, job); err != nil {
			w.log.Error().Err(err).
				Str("job_id", job.ID).
				Str("kind", job.Kind).
				Msg("trabajo diferido falló; se reintenta en el próximo barrido")
			continue
		}
		if err := w.jobs.Delete(ctx, job.ID); err != nil {
			w.log.Error().Err(err).Str("job_id", job.ID).Msg("no se pudo borrar el trabajo ejecutado")
		}
	}
}

func (w *Worker) execute(ctx context.Context, job *entity.ScheduledJob) error {
	backoff := retry.WithMaxRetries(retryMax, retry.NewExponential(retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		switch job.Kind {
		case entity.JobPurgeAccount:
			return retry.RetryableError(w.purgeAccount(ctx, job.AccountID))
		default:
			w.log.Warn().Str("kind", job.Kind).Msg("tipo de trabajo desconocido; se descarta")
			return nil
		}
	})
}

// purgeAccount borra definitivamente la cuenta, salvo que haya sido reactivada
// después de programarse la purga.
func (w *Worker) purgeAccount(ctx context.Context, accountID string) error {
	account, err := w.accounts.GetByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		// Ya no existe; el trabajo se considera cumplido.
		return nil
	}
	if account.Status == entity.StatusActive {
		w.log.Info().Str("account_id", accountID).Msg("cuenta reactivada; se cancela la purga")
		return nil
	}
	deleted, err := w.accounts.Delete(accountID)
	if err != nil {
		return err
	}
	if deleted {
		w.log.Info().Str("account_id", accountID).Msg("cuenta purgada definitivamente")
	}
	return nil
}
