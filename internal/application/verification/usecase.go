package verification

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

const (
	// tokenTTL vigencia del enlace de verificación.
	tokenTTL = 15 * time.Minute
	// resendWindow tiempo mínimo entre reenvíos del enlace.
	resendWindow = 60 * time.Second
)

// Mailer contrato mínimo de envío de correo que necesita el caso de uso.
type Mailer interface {
	Send(to, subject, html string) error
}

// UseCase verificación de email: emisión, reenvío y consumo del token.
type UseCase struct {
	accounts  repository.AccountRepository
	tokens    repository.VerificationTokenRepository
	mailer    Mailer
	clientURL string
}

// NewUseCase construye el caso de uso de verificación.
func NewUseCase(accounts repository.AccountRepository, tokens repository.VerificationTokenRepository, mailer Mailer, clientURL string) *UseCase {
	return &UseCase{accounts: accounts, tokens: tokens, mailer: mailer, clientURL: clientURL}
}

// Issue genera un token aleatorio, reemplaza el anterior de la cuenta y envía
// el correo con el enlace de confirmación.
func (uc *UseCase) Issue(account *entity.Account) error {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("generar token de verificación: %w", err)
	}
	now := time.Now()
	token := &entity.VerificationToken{
		AccountID: account.ID,
		Token:     hex.EncodeToString(raw),
		CreatedAt: now,
		ExpiresAt: now.Add(tokenTTL),
	}
	if err := uc.tokens.Upsert(token); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/users/%s/verify/%s", uc.clientURL, account.ID, token.Token)
	html := fmt.Sprintf(
		`<p>Hola %s,</p><p>Confirme su email haciendo clic en el siguiente enlace:</p><p><a href="%s">Confirmar email</a></p><p>El enlace vence en 15 minutos.</p>`,
		account.FirstName, link,
	)
	return uc.mailer.Send(account.Email, "Confirme su email", html)
}

// Verify consume el token: si coincide con el registrado para la cuenta y no
// venció, marca la cuenta como verificada y borra el token (un solo uso).
func (uc *UseCase) Verify(accountID, token string) error {
	stored, err := uc.tokens.GetByAccount(accountID)
	if err != nil {
		return err
	}
	if stored == nil || stored.Token != token || stored.Expired(time.Now()) {
		return domain.ErrInvalidLink
	}
	account, err := uc.accounts.GetByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrInvalidLink
	}
	account.Verified = true
	account.UpdatedAt = time.Now()
	if err := uc.accounts.Update(account); err != nil {
		return err
	}
	return uc.tokens.Delete(accountID)
}

// Resend reemite el enlace. Se rechaza si el email ya está verificado o si el
// último enlace se emitió hace menos de un minuto.
func (uc *UseCase) Resend(accountID string) error {
	account, err := uc.accounts.GetByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}
	if account.Verified {
		return domain.ErrAlreadyVerified
	}
	existing, err := uc.tokens.GetByAccount(accountID)
	if err != nil {
		return err
	}
	if existing != nil && time.Since(existing.CreatedAt) < resendWindow {
		return domain.ErrResendTooSoon
	}
	return uc.Issue(account)
}
