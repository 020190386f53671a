package password_test

import (
	"testing"
	"time"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/password"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- fakes en memoria ---

type memAccounts struct {
	byID    map[string]*entity.Account
	history map[string][]entity.PasswordHistoryEntry
}

func newMemAccounts() *memAccounts {
	return &memAccounts{
		byID:    make(map[string]*entity.Account),
		history: make(map[string][]entity.PasswordHistoryEntry),
	}
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

func (m *memAccounts) PasswordHistory(accountID string) ([]entity.PasswordHistoryEntry, error) {
	return m.history[accountID], nil
}

func (m *memAccounts) AppendPasswordHistory(accountID, hash string, changedAt time.Time) error {
	m.history[accountID] = append(m.history[accountID], entity.PasswordHistoryEntry{Hash: hash, ChangedAt: changedAt})
	return nil
}

type memOTPs struct {
	records []*entity.OTP
}

func (m *memOTPs) Create(o *entity.OTP) error {
	m.records = append(m.records, o)
	return nil
}

func (m *memOTPs) LatestByEmail(email string) (*entity.OTP, error) {
	var latest *entity.OTP
	now := time.Now()
	for _, o := range m.records {
		if o.Email != email || !o.ExpiresAt.After(now) {
			continue
		}
		if latest == nil || o.CreatedAt.After(latest.CreatedAt) {
			latest = o
		}
	}
	return latest, nil
}

func (m *memOTPs) MarkVerified(id string) error {
	for _, o := range m.records {
		if o.ID == id {
			o.Verified = true
		}
	}
	return nil
}

func (m *memOTPs) DeleteByEmail(email string) error {
	kept := m.records[:0]
	for _, o := range m.records {
		if o.Email != email {
			kept = append(kept, o)
		}
	}
	m.records = kept
	return nil
}

type fakeMailer struct {
	sent []string // destinatarios
	html string
}

func (f *fakeMailer) Send(to, subject, html string) error {
	f.sent = append(f.sent, to)
	f.html = html
	return nil
}

// --- helpers ---

const currentPassword = "Actual123!"

func seedAccount(t *testing.T, accounts *memAccounts, email string) *entity.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(currentPassword), bcrypt.MinCost)
	require.NoError(t, err)
	account := &entity.Account{
		ID:           "acc-" + email,
		Email:        email,
		Role:         entity.RoleUser,
		PasswordHash: string(hash),
		Verified:     true,
		Status:       entity.StatusActive,
	}
	require.NoError(t, accounts.Create(account))
	require.NoError(t, accounts.AppendPasswordHistory(account.ID, account.PasswordHash, time.Now().Add(-48*time.Hour)))
	return account
}

// --- Forgot / VerifyOTP / Reset ---

func TestForgot_GeneraYEnviaOTP(t *testing.T) {
	accounts := newMemAccounts()
	seedAccount(t, accounts, "ana@correo.cl")
	otps := &memOTPs{}
	mailer := &fakeMailer{}
	uc := password.NewUseCase(accounts, otps, mailer)

	require.NoError(t, uc.Forgot(dto.ForgotPasswordRequest{Email: "ana@correo.cl"}))

	require.Len(t, otps.records, 1)
	assert.Len(t, otps.records[0].Code, 6)
	assert.Equal(t, []string{"ana@correo.cl"}, mailer.sent)
	assert.Contains(t, mailer.html, otps.records[0].Code, "el correo lleva el código")
}

func TestForgot_EmailDesconocido(t *testing.T) {
	uc := password.NewUseCase(newMemAccounts(), &memOTPs{}, &fakeMailer{})
	err := uc.Forgot(dto.ForgotPasswordRequest{Email: "nadie@correo.cl"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestVerifyOTP_CodigoCorrecto(t *testing.T) {
	accounts := newMemAccounts()
	seedAccount(t, accounts, "ana@correo.cl")
	otps := &memOTPs{}
	uc := password.NewUseCase(accounts, otps, &fakeMailer{})

	require.NoError(t, uc.Forgot(dto.ForgotPasswordRequest{Email: "ana@correo.cl"}))
	code := otps.records[0].Code

	require.NoError(t, uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@correo.cl", OTP: code}))
	assert.True(t, otps.records[0].Verified)
}

func TestVerifyOTP_Errores(t *testing.T) {
	accounts := newMemAccounts()
	seedAccount(t, accounts, "ana@correo.cl")
	otps := &memOTPs{}
	uc := password.NewUseCase(accounts, otps, &fakeMailer{})

	// Sin código vigente.
	err := uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@correo.cl", OTP: "123456"})
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)

	// Código incorrecto.
	require.NoError(t, uc.Forgot(dto.ForgotPasswordRequest{Email: "ana@correo.cl"}))
	err = uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@correo.cl", OTP: "000000x"})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}

func TestVerifyOTP_CodigoVencido(t *testing.T) {
	accounts := newMemAccounts()
	seedAccount(t, accounts, "ana@correo.cl")
	otps := &memOTPs{}
	uc := password.NewUseCase(accounts, otps, &fakeMailer{})

	require.NoError(t, uc.Forgot(dto.ForgotPasswordRequest{Email: "ana@correo.cl"}))
	code := otps.records[0].Code

	// Pasaron más de 5 minutos desde la emisión.
	otps.records[0].CreatedAt = time.Now().Add(-6 * time.Minute)
	otps.records[0].ExpiresAt = time.Now().Add(-time.Minute)

	err := uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@correo.cl", OTP: code})
	assert.ErrorIs(t, err, domain.ErrOTPNotFound, "un código vencido equivale a no tener código")
}

func TestReset_RechazaOTPVencido(t *testing.T) {
	accounts := newMemAccounts()
	seedAccount(t, accounts, "ana@correo.cl")
	otps := &memOTPs{}
	uc := password.NewUseCase(accounts, otps, &fakeMailer{})

	require.NoError(t, uc.Forgot(dto.ForgotPasswordRequest{Email: "ana@correo.cl"}))
	require.NoError(t, uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@correo.cl", OTP: otps.records[0].Code}))

	// El código venció entre la verificación y el reset.
	otps.records[0].CreatedAt = time.Now().Add(-6 * time.Minute)
	otps.records[0].ExpiresAt = time.Now().Add(-time.Minute)

	err := uc.Reset(dto.ResetPasswordRequest{
		Email:           "ana@correo.cl",
		NewPassword:     "Nueva1234!",
		ConfirmPassword: "Nueva1234!",
	})
	assert.ErrorIs(t, err, domain.ErrOTPNotFound)
}

func TestReset_FlujoCompleto(t *testing.T) {
	accounts := newMemAccounts()
	account := seedAccount(t, accounts, "ana@correo.cl")
	otps := &memOTPs{}
	uc := password.NewUseCase(accounts, otps, &fakeMailer{})

	require.NoError(t, uc.Forgot(dto.ForgotPasswordRequest{Email: "ana@correo.cl"}))
	code := otps.records[0].Code
	require.NoError(t, uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@correo.cl", OTP: code}))

	err := uc.Reset(dto.ResetPasswordRequest{
		Email:           "ana@correo.cl",
		NewPassword:     "Nueva1234!",
		ConfirmPassword: "Nueva1234!",
	})
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("Nueva1234!")))
	assert.Empty(t, otps.records, "los códigos del email se purgan tras el reset")
	assert.Len(t, accounts.history[account.ID], 2, "la nueva contraseña entra al historial")
}

func TestReset_ExigeOTPVerificado(t *testing.T) {
	accounts := newMemAccounts()
	seedAccount(t, accounts, "ana@correo.cl")
	otps := &memOTPs{}
	uc := password.NewUseCase(accounts, otps, &fakeMailer{})

	require.NoError(t, uc.Forgot(dto.ForgotPasswordRequest{Email: "ana@correo.cl"}))

	err := uc.Reset(dto.ResetPasswordRequest{
		Email:           "ana@correo.cl",
		NewPassword:     "Nueva1234!",
		ConfirmPassword: "Nueva1234!",
	})
	assert.ErrorIs(t, err, domain.ErrOTPNotVerified)
}

func TestReset_RechazaPasswordDelHistorial(t *testing.T) {
	accounts := newMemAccounts()
	seedAccount(t, accounts, "ana@correo.cl")
	otps := &memOTPs{}
	uc := password.NewUseCase(accounts, otps, &fakeMailer{})

	require.NoError(t, uc.Forgot(dto.ForgotPasswordRequest{Email: "ana@correo.cl"}))
	require.NoError(t, uc.VerifyOTP(dto.VerifyOTPRequest{Email: "ana@correo.cl", OTP: otps.records[0].Code}))

	err := uc.Reset(dto.ResetPasswordRequest{
		Email:           "ana@correo.cl",
		NewPassword:     currentPassword,
		ConfirmPassword: currentPassword,
	})
	var reused *domain.PasswordReusedError
	require.ErrorAs(t, err, &reused)
	assert.Contains(t, reused.Error(), "día", "el mensaje informa la antigüedad")
}

// --- Update (cambio autenticado) ---

func TestUpdate_CambiaLaPassword(t *testing.T) {
	accounts := newMemAccounts()
	account := seedAccount(t, accounts, "ana@correo.cl")
	uc := password.NewUseCase(accounts, &memOTPs{}, &fakeMailer{})

	err := uc.Update(account.ID, dto.UpdatePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     "Nueva1234!",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("Nueva1234!")))
}

func TestUpdate_Errores(t *testing.T) {
	accounts := newMemAccounts()
	account := seedAccount(t, accounts, "ana@correo.cl")
	uc := password.NewUseCase(accounts, &memOTPs{}, &fakeMailer{})

	err := uc.Update(account.ID, dto.UpdatePasswordRequest{CurrentPassword: "Incorrecta1!", NewPassword: "Nueva1234!"})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)

	err = uc.Update(account.ID, dto.UpdatePasswordRequest{CurrentPassword: currentPassword, NewPassword: currentPassword})
	assert.ErrorIs(t, err, domain.ErrSamePassword)

	err = uc.Update(account.ID, dto.UpdatePasswordRequest{CurrentPassword: currentPassword, NewPassword: "debil"})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)

	err = uc.Update("no-existe", dto.UpdatePasswordRequest{CurrentPassword: currentPassword, NewPassword: "Nueva1234!"})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
