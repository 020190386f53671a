package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// OTPRepository puerto para códigos de restablecimiento de contraseña.
type OTPRepository interface {
	Create(otp *entity.OTP) error
	// LatestByEmail devuelve el código sin expirar más reciente para el email,
	// o (nil, nil) si no hay ninguno vigente.
	LatestByEmail(email string) (*entity.OTP, error)
	MarkVerified(id string) error
	DeleteByEmail(email string) error
}
