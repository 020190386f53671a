package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// fail traduce errores de dominio a respuestas HTTP {code, message}. Los
// handlers delegan acá para que cada sentinela tenga un solo mapeo.
func fail(c *fiber.Ctx, err error) error {
	var reused *domain.PasswordReusedError
	if errors.As(err, &reused) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PASSWORD_REUSED", Message: reused.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de entrada inválidos"})
	case errors.Is(err, domain.ErrWeakPassword):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WEAK_PASSWORD", Message: "la contraseña debe tener al menos 8 caracteres, mayúscula, minúscula, número y símbolo"})
	case errors.Is(err, domain.ErrPasswordMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PASSWORD_MISMATCH", Message: "las contraseñas no coinciden"})
	case errors.Is(err, domain.ErrSamePassword):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SAME_PASSWORD", Message: "la nueva contraseña no puede ser igual a la actual"})
	case errors.Is(err, domain.ErrInvalidOTP):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_OTP", Message: "el código no es válido"})
	case errors.Is(err, domain.ErrOTPNotVerified):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OTP_NOT_VERIFIED", Message: "debe verificar el código antes de restablecer la contraseña"})
	case errors.Is(err, domain.ErrAlreadyVerified):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ALREADY_VERIFIED", Message: "el email ya está verificado"})
	case errors.Is(err, domain.ErrInvalidLink):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_LINK", Message: "el enlace no es válido o ya venció"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "no hay stock suficiente para completar la orden"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrWrongPassword):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "WRONG_PASSWORD", Message: "la contraseña actual es incorrecta"})
	case errors.Is(err, domain.ErrEmailNotVerified):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "EMAIL_NOT_VERIFIED", Message: "debe verificar su email antes de iniciar sesión"})
	case errors.Is(err, domain.ErrInvalidRefreshToken), errors.Is(err, domain.ErrInvalidSession):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "la sesión ya no es válida"})
	case errors.Is(err, domain.ErrSupplierNotApproved):
		// Falla de autenticación en el login, no de permisos.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SUPPLIER_NOT_APPROVED", Message: "la cuenta de proveedor aún no fue aprobada"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autenticado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permisos para esta operación"})
	case errors.Is(err, domain.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ACCOUNT_NOT_FOUND", Message: "la cuenta no existe"})
	case errors.Is(err, domain.ErrOTPNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "OTP_NOT_FOUND", Message: "no hay un código vigente para ese email"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el recurso no existe"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un recurso con ese nombre"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual del recurso"})
	case errors.Is(err, domain.ErrResendTooSoon):
		return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RESEND_TOO_SOON", Message: "espere un minuto antes de pedir otro enlace"})
	}
	return internalError(c, err)
}

// internalError loguea el error real y responde con un mensaje genérico: el
// detalle nunca viaja al cliente.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

// notFound respuesta 404 estándar para recursos inexistentes.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el recurso no existe"})
}

// badBody respuesta 400 estándar para cuerpos que no parsean.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
