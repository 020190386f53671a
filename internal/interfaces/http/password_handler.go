package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/password"
)

// PasswordHandler restablecimiento por OTP y cambio autenticado de contraseña.
type PasswordHandler struct {
	uc *password.UseCase
}

// NewPasswordHandler construye el handler de contraseñas.
func NewPasswordHandler(uc *password.UseCase) *PasswordHandler {
	return &PasswordHandler{uc: uc}
}

// Forgot envía un código de restablecimiento al email.
func (h *PasswordHandler) Forgot(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
	}
	if err := h.uc.Forgot(in); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "código enviado al correo"})
}

// VerifyOTP valida el código recibido por correo.
func (h *PasswordHandler) VerifyOTP(c *fiber.Ctx) error {
	var in dto.VerifyOTPRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y otp son requeridos"})
	}
	if err := h.uc.VerifyOTP(in); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "código verificado"})
}

// Reset establece la nueva contraseña tras un OTP verificado.
func (h *PasswordHandler) Reset(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y new_password son requeridos"})
	}
	if err := h.uc.Reset(in); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña restablecida"})
}

// Update cambio de contraseña autenticado (requiere la contraseña actual).
func (h *PasswordHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "current_password y new_password son requeridos"})
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}
