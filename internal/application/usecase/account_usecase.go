package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// AccountUseCase administración de cuentas: listados, perfil, aprobación de
// proveedores y baja con purga diferida.
type AccountUseCase struct {
	accounts      repository.AccountRepository
	sessions      repository.SessionRepository
	jobs          repository.ScheduledJobRepository
	retentionDays int
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(accounts repository.AccountRepository, sessions repository.SessionRepository, jobs repository.ScheduledJobRepository, retentionDays int) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, sessions: sessions, jobs: jobs, retentionDays: retentionDays}
}

// List lista cuentas con paginación y total.
func (uc *AccountUseCase) List(limit, offset int) (*dto.AccountListResponse, error) {
	total, err := uc.accounts.Count()
	if err != nil {
		return nil, err
	}
	list, err := uc.accounts.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return accountList(list, limit, offset, total), nil
}

// ListSuppliers lista solo cuentas de proveedor.
func (uc *AccountUseCase) ListSuppliers(limit, offset int) (*dto.AccountListResponse, error) {
	total, err := uc.accounts.CountSuppliers()
	if err != nil {
		return nil, err
	}
	list, err := uc.accounts.ListSuppliers(limit, offset)
	if err != nil {
		return nil, err
	}
	return accountList(list, limit, offset, total), nil
}

// GetByID obtiene una cuenta por ID.
func (uc *AccountUseCase) GetByID(id string) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return dto.AccountResponseFrom(account), nil
}

// Update actualiza el perfil. El email es inmutable; los campos de proveedor
// solo aplican a cuentas supplier.
func (uc *AccountUseCase) Update(id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	if in.FirstName != nil {
		account.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		account.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		account.PhoneNumber = *in.PhoneNumber
	}
	if in.Gender != nil {
		account.Gender = *in.Gender
	}
	if in.Address != nil {
		account.Address = entity.Address{
			City:       in.Address.City,
			Commune:    in.Address.Commune,
			District:   in.Address.District,
			Village:    in.Address.Village,
			Street:     in.Address.Street,
			HomeNumber: in.Address.HomeNumber,
		}
	}
	if in.ProfilePicture != nil {
		account.ProfilePicture = *in.ProfilePicture
	}
	if account.IsSupplier() && account.Supplier != nil {
		if in.FarmName != nil {
			account.Supplier.FarmName = *in.FarmName
		}
		if in.HarvestSchedule != nil {
			account.Supplier.HarvestSchedule = in.HarvestSchedule
		}
		if in.IsOrganic != nil {
			account.Supplier.IsOrganic = *in.IsOrganic
		}
	}
	account.UpdatedAt = time.Now()
	if err := uc.accounts.Update(account); err != nil {
		return nil, err
	}
	return dto.AccountResponseFrom(account), nil
}

// ApproveSupplier pasa un proveedor de pending a active, habilitando su login.
func (uc *AccountUseCase) ApproveSupplier(id string) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	if !account.IsSupplier() || account.Supplier == nil {
		return nil, domain.ErrInvalidInput
	}
	account.Supplier.Status = entity.SupplierActive
	account.UpdatedAt = time.Now()
	if err := uc.accounts.Update(account); err != nil {
		return nil, err
	}
	return dto.AccountResponseFrom(account), nil
}

// SoftDelete desactiva la cuenta, cierra sus sesiones y persiste el trabajo de
// purga diferida. El borrado definitivo lo ejecuta el worker cuando vence el
// plazo de retención; sobrevive reinicios porque el trabajo queda en la DB.
func (uc *AccountUseCase) SoftDelete(id string) (bool, error) {
	account, err := uc.accounts.GetByID(id)
	if err != nil {
		return false, err
	}
	if account == nil {
		return false, nil
	}
	account.Status = entity.StatusInactive
	account.UpdatedAt = time.Now()
	if err := uc.accounts.Update(account); err != nil {
		return false, err
	}
	if err := uc.sessions.DeleteByAccount(id); err != nil {
		return false, err
	}
	job := &entity.ScheduledJob{
		ID:        uuid.New().String(),
		Kind:      entity.JobPurgeAccount,
		AccountID: id,
		RunAt:     time.Now().AddDate(0, 0, uc.retentionDays),
		CreatedAt: time.Now(),
	}
	if err := uc.jobs.Create(context.Background(), job); err != nil {
		return false, err
	}
	return true, nil
}

func accountList(list []*entity.Account, limit, offset, total int) *dto.AccountListResponse {
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *dto.AccountResponseFrom(a))
	}
	return &dto.AccountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
}
