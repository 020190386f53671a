package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
)

// AccountHandler listados de cuentas, perfil, aprobación de proveedores y baja.
type AccountHandler struct {
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// List lista cuentas con paginación (solo admin).
func (h *AccountHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListSuppliers lista solo cuentas de proveedor (solo admin).
func (h *AccountHandler) ListSuppliers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	out, err := h.uc.ListSuppliers(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una cuenta.
func (h *AccountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Update actualiza el perfil (el dueño o un admin).
func (h *AccountHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// ApproveSupplier habilita el login de un proveedor pendiente (solo admin).
func (h *AccountHandler) ApproveSupplier(c *fiber.Ctx) error {
	out, err := h.uc.ApproveSupplier(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Delete desactiva la cuenta y programa la purga diferida.
func (h *AccountHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.SoftDelete(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta desactivada; se borrará definitivamente al vencer el plazo de retención"})
}
