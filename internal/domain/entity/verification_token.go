package entity

import "time"

// VerificationToken token de un solo uso para confirmar el email de una cuenta.
// Como máximo uno por cuenta; se borra al verificar.
type VerificationToken struct {
	AccountID string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si el token ya venció.
func (t *VerificationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
