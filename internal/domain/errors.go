package domain

import (
	"errors"
	"fmt"
	"time"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrAccountNotFound    = errors.New("cuenta no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Autenticación. Email desconocido y contraseña incorrecta comparten el mismo
	// error: la respuesta nunca revela cuál de los dos falló.
	ErrInvalidCredentials  = errors.New("email o contraseña inválidos")
	ErrEmailNotVerified    = errors.New("verifique su email antes de iniciar sesión")
	ErrSupplierNotApproved = errors.New("la cuenta de proveedor aún no fue aprobada por el administrador")
	ErrInvalidSession      = errors.New("sesión inválida")
	ErrInvalidRefreshToken = errors.New("token de refresco inválido")

	// Verificación de email y OTP.
	ErrInvalidLink     = errors.New("enlace de verificación inválido o expirado")
	ErrAlreadyVerified = errors.New("el email ya fue verificado")
	ErrResendTooSoon   = errors.New("ya se envió un enlace hace menos de un minuto")
	ErrOTPNotFound     = errors.New("código no encontrado o expirado")
	ErrInvalidOTP      = errors.New("código inválido")
	ErrOTPNotVerified  = errors.New("el código debe verificarse antes de restablecer la contraseña")

	// Contraseñas.
	ErrWeakPassword     = errors.New("la contraseña debe tener al menos 8 caracteres con mayúscula, minúscula, número y símbolo")
	ErrPasswordMismatch = errors.New("las contraseñas no coinciden")
	ErrWrongPassword    = errors.New("la contraseña actual es incorrecta")
	ErrSamePassword     = errors.New("la nueva contraseña debe ser distinta de la actual")

	// Órdenes.
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// PasswordReusedError indica que la nueva contraseña ya figura en el historial.
// Lleva cuánto tiempo pasó desde que se usó, para el mensaje al cliente.
type PasswordReusedError struct {
	Ago time.Duration
}

func (e *PasswordReusedError) Error() string {
	return fmt.Sprintf("no se puede reutilizar la contraseña creada hace %s", humanDuration(e.Ago))
}

func humanDuration(d time.Duration) string {
	if days := int(d.Hours()) / 24; days > 0 {
		return fmt.Sprintf("%d día(s)", days)
	}
	if hours := int(d.Hours()); hours > 0 {
		return fmt.Sprintf("%d hora(s)", hours)
	}
	minutes := int(d.Minutes())
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d minuto(s)", minutes)
}
