package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mercado-api/internal/application/auth"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/verification"
)

// AuthHandler registro, login, logout, refresh y verificación de email.
type AuthHandler struct {
	auth         *auth.UseCase
	verification *verification.UseCase
	cookieMaxAge time.Duration
}

// NewAuthHandler construye el handler de auth. cookieMaxAge es la vigencia de
// las cookies de tokens (la del refresh).
func NewAuthHandler(authUC *auth.UseCase, verificationUC *verification.UseCase, cookieMaxAge time.Duration) *AuthHandler {
	return &AuthHandler{auth: authUC, verification: verificationUC, cookieMaxAge: cookieMaxAge}
}

// Register crea la cuenta y dispara el correo de verificación. La presencia de
// campos de proveedor en el payload clasifica la cuenta como supplier.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "first_name, last_name, email y password son requeridos"})
	}
	account, err := h.auth.Register(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// Login verifica credenciales y deja ambos tokens también como cookies httpOnly.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.auth.Login(in)
	if err != nil {
		return fail(c, err)
	}
	h.setTokenCookies(c, out.Token, out.RefreshToken)
	return c.JSON(out)
}

// Refresh emite un nuevo token de acceso a partir del refresh token (cuerpo o
// cookie refreshToken).
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	_ = c.BodyParser(&in)
	if in.RefreshToken == "" {
		in.RefreshToken = c.Cookies("refreshToken")
	}
	if in.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "refresh_token es requerido"})
	}
	out, err := h.auth.Refresh(in.RefreshToken)
	if err != nil {
		return fail(c, err)
	}
	h.setTokenCookies(c, out.Token, in.RefreshToken)
	return c.JSON(out)
}

// Logout cierra las sesiones de la cuenta y limpia las cookies.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.Params("id")); err != nil {
		return fail(c, err)
	}
	c.Cookie(expiredCookie("accessToken"))
	c.Cookie(expiredCookie("refreshToken"))
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Verify consume el enlace de verificación de email (un solo uso).
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	if err := h.verification.Verify(c.Params("id"), c.Params("token")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "email verificado"})
}

// ResendVerification reemite el enlace de verificación.
func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	if err := h.verification.Resend(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "enlace de verificación reenviado"})
}

func (h *AuthHandler) setTokenCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	expires := time.Now().Add(h.cookieMaxAge)
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    accessToken,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func expiredCookie(name string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
