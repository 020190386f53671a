package entity

import "time"

// OTP código numérico de restablecimiento de contraseña, ligado a un email.
// Solo cuenta el más reciente sin expirar; los anteriores quedan supersedidos.
type OTP struct {
	ID        string
	Email     string
	Code      string
	Verified  bool // pasó por verify-otp; requisito para reset-password
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si el código ya venció.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
