package password

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
	"github.com/jhoicas/Mercado-api/pkg/otp"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost = 12
	// otpTTL vigencia del código de restablecimiento.
	otpTTL = 5 * time.Minute
)

// Mailer contrato mínimo de envío de correo que necesita el caso de uso.
type Mailer interface {
	Send(to, subject, html string) error
}

// UseCase restablecimiento por OTP y cambio de contraseña autenticado.
type UseCase struct {
	accounts repository.AccountRepository
	otps     repository.OTPRepository
	mailer   Mailer
}

// NewUseCase construye el caso de uso de contraseñas.
func NewUseCase(accounts repository.AccountRepository, otps repository.OTPRepository, mailer Mailer) *UseCase {
	return &UseCase{accounts: accounts, otps: otps, mailer: mailer}
}

// Forgot genera un código de 6 dígitos con vigencia de 5 minutos y lo envía por
// correo. Un nuevo pedido supersede los códigos anteriores del mismo email.
func (uc *UseCase) Forgot(in dto.ForgotPasswordRequest) error {
	account, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}

	code, err := otp.Generate()
	if err != nil {
		return err
	}
	now := time.Now()
	record := &entity.OTP{
		ID:        uuid.New().String(),
		Email:     in.Email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(otpTTL),
	}
	if err := uc.otps.Create(record); err != nil {
		return err
	}

	html := fmt.Sprintf(
		`<p>Solicitó restablecer su contraseña. Use el siguiente código para continuar:</p><p><strong>%s</strong></p><p>El código vence en 5 minutos. Si no fue usted, ignore este correo.</p>`,
		code,
	)
	return uc.mailer.Send(in.Email, "Código de restablecimiento", html)
}

// VerifyOTP compara el código presentado contra el más reciente sin expirar
// para el email, y lo marca como verificado si coincide.
func (uc *UseCase) VerifyOTP(in dto.VerifyOTPRequest) error {
	account, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}
	latest, err := uc.otps.LatestByEmail(in.Email)
	if err != nil {
		return err
	}
	if latest == nil {
		return domain.ErrOTPNotFound
	}
	if latest.Code != in.OTP {
		return domain.ErrInvalidOTP
	}
	return uc.otps.MarkVerified(latest.ID)
}

// Reset establece la nueva contraseña tras un OTP verificado y purga los
// códigos del email. Aplica la regla de no reutilización del historial.
func (uc *UseCase) Reset(in dto.ResetPasswordRequest) error {
	if in.NewPassword != in.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	if !domain.StrongPassword(in.NewPassword) {
		return domain.ErrWeakPassword
	}
	account, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}
	latest, err := uc.otps.LatestByEmail(in.Email)
	if err != nil {
		return err
	}
	if latest == nil {
		return domain.ErrOTPNotFound
	}
	if !latest.Verified {
		return domain.ErrOTPNotVerified
	}
	if err := uc.checkHistory(account.ID, in.NewPassword); err != nil {
		return err
	}
	if err := uc.setPassword(account, in.NewPassword); err != nil {
		return err
	}
	return uc.otps.DeleteByEmail(in.Email)
}

// Update cambio de contraseña autenticado: exige la contraseña actual y aplica
// la regla de no reutilización del historial.
func (uc *UseCase) Update(accountID string, in dto.UpdatePasswordRequest) error {
	account, err := uc.accounts.GetByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	if in.CurrentPassword == in.NewPassword {
		return domain.ErrSamePassword
	}
	if !domain.StrongPassword(in.NewPassword) {
		return domain.ErrWeakPassword
	}
	if err := uc.checkHistory(account.ID, in.NewPassword); err != nil {
		return err
	}
	return uc.setPassword(account, in.NewPassword)
}

// checkHistory devuelve PasswordReusedError si la contraseña en claro coincide
// con algún hash del historial de la cuenta.
func (uc *UseCase) checkHistory(accountID, newPassword string) error {
	history, err := uc.accounts.PasswordHistory(accountID)
	if err != nil {
		return err
	}
	for _, entry := range history {
		if bcrypt.CompareHashAndPassword([]byte(entry.Hash), []byte(newPassword)) == nil {
			return &domain.PasswordReusedError{Ago: time.Since(entry.ChangedAt)}
		}
	}
	return nil
}

func (uc *UseCase) setPassword(account *entity.Account, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	now := time.Now()
	account.PasswordHash = string(hash)
	account.PasswordChangedAt = now
	account.UpdatedAt = now
	if err := uc.accounts.Update(account); err != nil {
		return err
	}
	return uc.accounts.AppendPasswordHistory(account.ID, account.PasswordHash, now)
}
