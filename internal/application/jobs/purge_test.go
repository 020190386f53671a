package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Mercado-api/internal/application/jobs"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes en memoria ---

type memAccounts struct {
	byID map[string]*entity.Account
}

func newMemAccounts(accounts ...*entity.Account) *memAccounts {
	m := &memAccounts{byID: make(map[string]*entity.Account)}
	for _, a := range accounts {
		m.byID[a.ID] = a
	}
	return m
}

func (m *memAccounts) Create(a *entity.Account) error {
	m.byID[a.ID] = a
	return nil
}

func (m *memAccounts) GetByID(id string) (*entity.Account, error) { return m.byID[id], nil }

func (m *memAccounts) GetByEmail(email string) (*entity.Account, error) {
	for _, a := range m.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memAccounts) Update(a *entity.Account) error {
	m.byID[a.ID] = a
	return nil
}

func (m *memAccounts) List(limit, offset int) ([]*entity.Account, error)          { return nil, nil }
func (m *memAccounts) ListSuppliers(limit, offset int) ([]*entity.Account, error) { return nil, nil }
func (m *memAccounts) Count() (int, error)                                        { return len(m.byID), nil }
func (m *memAccounts) CountSuppliers() (int, error)                               { return 0, nil }

func (m *memAccounts) Delete(id string) (bool, error) {
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

func (m *memAccounts) PasswordHistory(string) ([]entity.PasswordHistoryEntry, error) {
	return nil, nil
}

func (m *memAccounts) AppendPasswordHistory(string, string, time.Time) error { return nil }

type memJobs struct {
	byID map[string]*entity.ScheduledJob
}

func newMemJobs(list ...*entity.ScheduledJob) *memJobs {
	m := &memJobs{byID: make(map[string]*entity.ScheduledJob)}
	for _, j := range list {
		m.byID[j.ID] = j
	}
	return m
}

func (m *memJobs) Create(ctx context.Context, job *entity.ScheduledJob) error {
	m.byID[job.ID] = job
	return nil
}

func (m *memJobs) Due(ctx context.Context, now time.Time) ([]*entity.ScheduledJob, error) {
	out := make([]*entity.ScheduledJob, 0)
	for _, j := range m.byID {
		if !j.RunAt.After(now) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memJobs) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

func (m *memJobs) DeleteByAccount(ctx context.Context, accountID string) error {
	for id, j := range m.byID {
		if j.AccountID == accountID {
			delete(m.byID, id)
		}
	}
	return nil
}

// --- helpers ---

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

func purgeJob(id, accountID string, runAt time.Time) *entity.ScheduledJob {
	return &entity.ScheduledJob{
		ID:        id,
		Kind:      entity.JobPurgeAccount,
		AccountID: accountID,
		RunAt:     runAt,
		CreatedAt: runAt.AddDate(0, 0, -30),
	}
}

func TestSweep_PurgaCuentaInactivaVencida(t *testing.T) {
	account := &entity.Account{ID: "acc-1", Email: "ana@correo.cl", Status: entity.StatusInactive}
	accounts := newMemAccounts(account)
	pending := newMemJobs(purgeJob("j-1", "acc-1", time.Now().Add(-time.Hour)))
	worker := jobs.NewWorker(pending, accounts, testLogger())

	worker.Sweep(context.Background())

	assert.Empty(t, accounts.byID, "la cuenta inactiva vencida se borra definitivamente")
	assert.Empty(t, pending.byID, "el trabajo ejecutado sale de la tabla")
}

func TestSweep_CuentaReactivadaCancelaLaPurga(t *testing.T) {
	account := &entity.Account{ID: "acc-1", Email: "ana@correo.cl", Status: entity.StatusActive}
	accounts := newMemAccounts(account)
	pending := newMemJobs(purgeJob("j-1", "acc-1", time.Now().Add(-time.Hour)))
	worker := jobs.NewWorker(pending, accounts, testLogger())

	worker.Sweep(context.Background())

	require.NotNil(t, accounts.byID["acc-1"], "la cuenta reactivada no se toca")
	assert.Empty(t, pending.byID, "la purga cancelada también se da por cumplida")
}

func TestSweep_RespetaTrabajosNoVencidos(t *testing.T) {
	account := &entity.Account{ID: "acc-1", Email: "ana@correo.cl", Status: entity.StatusInactive}
	accounts := newMemAccounts(account)
	pending := newMemJobs(purgeJob("j-1", "acc-1", time.Now().Add(24*time.Hour)))
	worker := jobs.NewWorker(pending, accounts, testLogger())

	worker.Sweep(context.Background())

	assert.NotNil(t, accounts.byID["acc-1"])
	assert.Len(t, pending.byID, 1, "el trabajo sigue programado")
}

func TestSweep_CuentaYaBorrada(t *testing.T) {
	accounts := newMemAccounts()
	pending := newMemJobs(purgeJob("j-1", "acc-1", time.Now().Add(-time.Hour)))
	worker := jobs.NewWorker(pending, accounts, testLogger())

	worker.Sweep(context.Background())

	assert.Empty(t, pending.byID, "sin cuenta que purgar, el trabajo se da por cumplido")
}
