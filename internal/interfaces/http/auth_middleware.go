package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
	"github.com/jhoicas/Mercado-api/pkg/jwt"
)

// Locals keys en Fiber después del middleware de auth.
const (
	LocalAccountID = "account_id"
	LocalRole      = "role"
	LocalAccount   = "account"
)

// AuthMiddleware valida el Bearer Token (o la cookie accessToken) y exige que
// una sesión viva lo respalde: un token firmado pero sin sesión (logout) se
// rechaza. Deja la cuenta en c.Locals.
func AuthMiddleware(jwtSecret string, sessions repository.SessionRepository, accounts repository.AccountRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token de acceso requerido"})
		}
		accountID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		session, err := sessions.GetByAccountAndAccessToken(accountID, tokenString)
		if err != nil {
			return internalError(c, err)
		}
		if session == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "la sesión ya no es válida"})
		}
		account, err := accounts.GetByID(accountID)
		if err != nil {
			return internalError(c, err)
		}
		if account == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "la cuenta ya no existe"})
		}
		c.Locals(LocalAccountID, accountID)
		c.Locals(LocalRole, role)
		c.Locals(LocalAccount, account)
		return c.Next()
	}
}

// bearerToken extrae el token del header Authorization o de la cookie accessToken.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return c.Cookies("accessToken")
}

// RequireRole corta con 403 si el rol autenticado no está en roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permisos para esta operación"})
	}
}

// RequireAdmin corta con 403 si el autenticado no es admin.
func RequireAdmin() fiber.Handler {
	return RequireRole(entity.RoleAdmin)
}

// RequireSelf corta con 403 si el parámetro de ruta no coincide con la cuenta
// autenticada. Un admin pasa siempre.
func RequireSelf(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == entity.RoleAdmin || c.Params(param) == GetAccountID(c) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede operar sobre su propia cuenta"})
	}
}

// GetAccountID devuelve el ID de la cuenta autenticada.
func GetAccountID(c *fiber.Ctx) string {
	v := c.Locals(LocalAccountID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol de la cuenta autenticada.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetAccount devuelve la cuenta autenticada cargada por el middleware.
func GetAccount(c *fiber.Ctx) *entity.Account {
	v := c.Locals(LocalAccount)
	if v == nil {
		return nil
	}
	a, _ := v.(*entity.Account)
	return a
}
