package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
	"github.com/jhoicas/Mercado-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost coste del hash de contraseñas.
const bcryptCost = 12

// JWTConfig configuración para generación de tokens de acceso y de refresco.
type JWTConfig struct {
	Secret            string
	ExpMinutes        int
	RefreshSecret     string
	RefreshExpMinutes int
	Issuer            string
}

// verificationSender emite y envía por correo el token de verificación de email.
// Lo implementa *verification.UseCase; la interfaz evita el import circular.
type verificationSender interface {
	Issue(account *entity.Account) error
}

// UseCase casos de uso de autenticación: registro, login, refresh y logout.
type UseCase struct {
	accounts repository.AccountRepository
	sessions repository.SessionRepository
	jobs     repository.ScheduledJobRepository
	verifier verificationSender
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(accounts repository.AccountRepository, sessions repository.SessionRepository, jobs repository.ScheduledJobRepository, verifier verificationSender, jwtCfg JWTConfig) *UseCase {
	return &UseCase{accounts: accounts, sessions: sessions, jobs: jobs, verifier: verifier, jwtCfg: jwtCfg}
}

// Register crea una cuenta. La presencia de campos de proveedor clasifica el
// payload como supplier (queda pendiente de aprobación); si no, como user.
// Emite el token de verificación y envía el correo; no inicia sesión.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if !domain.StrongPassword(in.Password) {
		return nil, domain.ErrWeakPassword
	}
	existing, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &entity.Account{
		ID:          uuid.New().String(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		BirthDate:   in.BirthDate,
		Gender:      in.Gender,
		Address: entity.Address{
			City:       in.Address.City,
			Commune:    in.Address.Commune,
			District:   in.Address.District,
			Village:    in.Address.Village,
			Street:     in.Address.Street,
			HomeNumber: in.Address.HomeNumber,
		},
		Role:              entity.RoleUser,
		PasswordHash:      string(hash),
		Verified:          false,
		Status:            entity.StatusActive,
		LastLogin:         now,
		PasswordChangedAt: now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.HasSupplierFields() {
		account.Role = entity.RoleSupplier
		profile := &entity.SupplierProfile{
			FarmName:        in.FarmName,
			HarvestSchedule: in.HarvestSchedule,
			Status:          entity.SupplierPending,
		}
		if in.IsOrganic != nil {
			profile.IsOrganic = *in.IsOrganic
		}
		account.Supplier = profile
	}

	if err := uc.accounts.Create(account); err != nil {
		return nil, err
	}
	// Toda contraseña establecida queda en el historial.
	if err := uc.accounts.AppendPasswordHistory(account.ID, account.PasswordHash, now); err != nil {
		return nil, err
	}
	if err := uc.verifier.Issue(account); err != nil {
		return nil, err
	}
	return dto.AccountResponseFrom(account), nil
}

// Login verifica credenciales y estado de la cuenta, registra la sesión y
// devuelve ambos tokens. Email desconocido y contraseña incorrecta producen el
// mismo error. Una cuenta inactiva se reactiva en este punto.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !account.Verified {
		return nil, domain.ErrEmailNotVerified
	}

	// La aprobación del proveedor no se toca: un pending sigue pending aunque
	// la cuenta se reactive.
	if account.IsSupplier() && (account.Supplier == nil || account.Supplier.Status != entity.SupplierActive) {
		return nil, domain.ErrSupplierNotApproved
	}

	reactivated := false
	if account.Status == entity.StatusInactive {
		account.Status = entity.StatusActive
		// Cancelar la purga programada por el soft delete.
		if err := uc.jobs.DeleteByAccount(context.Background(), account.ID); err != nil {
			return nil, err
		}
		reactivated = true
	}

	account.LastLogin = time.Now()
	account.UpdatedAt = account.LastLogin
	if err := uc.accounts.Update(account); err != nil {
		return nil, err
	}

	token, refresh, err := uc.issueTokens(account)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:        token,
		RefreshToken: refresh,
		Reactivated:  reactivated,
		Account:      *dto.AccountResponseFrom(account),
	}, nil
}

// Refresh valida el token de refresco contra su sesión y emite un nuevo token
// de acceso, actualizando el registro de sesión.
func (uc *UseCase) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	accountID, _, err := jwt.Parse(uc.jwtCfg.RefreshSecret, refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}
	session, err := uc.sessions.GetByRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if session == nil || session.AccountID != accountID {
		return nil, domain.ErrInvalidSession
	}
	account, err := uc.accounts.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.UpdateAccessToken(session.ID, token); err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{Token: token}, nil
}

// Logout borra las sesiones de la cuenta; los tokens quedan inválidos aunque
// su expiración JWT no haya llegado.
func (uc *UseCase) Logout(accountID string) error {
	return uc.sessions.DeleteByAccount(accountID)
}

func (uc *UseCase) issueTokens(account *entity.Account) (token, refresh string, err error) {
	token, err = jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.GenerateRefresh(uc.jwtCfg.RefreshSecret, account.ID, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return "", "", err
	}
	session := &entity.Session{
		ID:           uuid.New().String(),
		AccountID:    account.ID,
		AccessToken:  token,
		RefreshToken: refresh,
		CreatedAt:    time.Now(),
	}
	if err := uc.sessions.Create(session); err != nil {
		return "", "", err
	}
	return token, refresh, nil
}
