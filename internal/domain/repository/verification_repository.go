package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// VerificationTokenRepository puerto para tokens de verificación de email.
// Hay a lo sumo uno por cuenta; Upsert reemplaza el anterior.
type VerificationTokenRepository interface {
	Upsert(token *entity.VerificationToken) error
	GetByAccount(accountID string) (*entity.VerificationToken, error)
	Delete(accountID string) error
}
