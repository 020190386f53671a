package usecase_test

import (
	"testing"
	"time"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const retentionDays = 30

func userAccount(id, email string) *entity.Account {
	return &entity.Account{
		ID:       id,
		Email:    email,
		Role:     entity.RoleUser,
		Verified: true,
		Status:   entity.StatusActive,
	}
}

func supplierAccount(id, email string) *entity.Account {
	a := userAccount(id, email)
	a.Role = entity.RoleSupplier
	a.Supplier = &entity.SupplierProfile{FarmName: "Fundo El Roble", Status: entity.SupplierPending}
	return a
}

func TestAccountListSuppliers_SoloProveedores(t *testing.T) {
	accounts := newMemAccounts(
		userAccount("acc-1", "ana@correo.cl"),
		supplierAccount("acc-2", "fundo@correo.cl"),
	)
	uc := usecase.NewAccountUseCase(accounts, &memSessions{}, newMemJobs(), retentionDays)

	resp, err := uc.ListSuppliers(10, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "acc-2", resp.Items[0].ID)
	assert.Equal(t, 1, resp.Page.Total)
}

func TestAccountUpdate_EmailInmutable(t *testing.T) {
	account := userAccount("acc-1", "ana@correo.cl")
	accounts := newMemAccounts(account)
	uc := usecase.NewAccountUseCase(accounts, &memSessions{}, newMemJobs(), retentionDays)

	name := "Anita"
	resp, err := uc.Update("acc-1", dto.UpdateAccountRequest{FirstName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Anita", resp.FirstName)
	assert.Equal(t, "ana@correo.cl", resp.Email)
}

func TestAccountUpdate_CamposDeProveedorSoloParaSuppliers(t *testing.T) {
	user := userAccount("acc-1", "ana@correo.cl")
	supplier := supplierAccount("acc-2", "fundo@correo.cl")
	accounts := newMemAccounts(user, supplier)
	uc := usecase.NewAccountUseCase(accounts, &memSessions{}, newMemJobs(), retentionDays)

	farm := "Fundo Santa Rosa"
	_, err := uc.Update("acc-1", dto.UpdateAccountRequest{FarmName: &farm})
	require.NoError(t, err)
	assert.Nil(t, user.Supplier, "una cuenta user ignora los campos de proveedor")

	resp, err := uc.Update("acc-2", dto.UpdateAccountRequest{FarmName: &farm})
	require.NoError(t, err)
	assert.Equal(t, "Fundo Santa Rosa", resp.Supplier.FarmName)
}

func TestApproveSupplier(t *testing.T) {
	supplier := supplierAccount("acc-2", "fundo@correo.cl")
	accounts := newMemAccounts(userAccount("acc-1", "ana@correo.cl"), supplier)
	uc := usecase.NewAccountUseCase(accounts, &memSessions{}, newMemJobs(), retentionDays)

	resp, err := uc.ApproveSupplier("acc-2")
	require.NoError(t, err)
	assert.Equal(t, entity.SupplierActive, resp.Supplier.Status)

	_, err = uc.ApproveSupplier("acc-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo cuentas supplier se aprueban")
}

func TestSoftDelete_DesactivaCierraSesionesYProgramaPurga(t *testing.T) {
	account := userAccount("acc-1", "ana@correo.cl")
	accounts := newMemAccounts(account)
	sessions := &memSessions{}
	require.NoError(t, sessions.Create(&entity.Session{ID: "s-1", AccountID: "acc-1", AccessToken: "tok"}))
	jobs := newMemJobs()
	uc := usecase.NewAccountUseCase(accounts, sessions, jobs, retentionDays)

	deleted, err := uc.SoftDelete("acc-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	// La cuenta sigue existiendo pero inactiva, sin sesiones vivas.
	assert.Equal(t, entity.StatusInactive, account.Status)
	assert.Empty(t, sessions.sessions)

	// Queda el trabajo de purga con el plazo de retención.
	require.Len(t, jobs.byID, 1)
	for _, job := range jobs.byID {
		assert.Equal(t, entity.JobPurgeAccount, job.Kind)
		assert.Equal(t, "acc-1", job.AccountID)
		expected := time.Now().AddDate(0, 0, retentionDays)
		assert.WithinDuration(t, expected, job.RunAt, time.Minute)
	}
}

func TestSoftDelete_CuentaInexistente(t *testing.T) {
	uc := usecase.NewAccountUseCase(newMemAccounts(), &memSessions{}, newMemJobs(), retentionDays)

	deleted, err := uc.SoftDelete("no-existe")
	require.NoError(t, err)
	assert.False(t, deleted)
}
