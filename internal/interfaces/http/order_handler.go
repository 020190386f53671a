package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
)

// OrderHandler órdenes de compra y su historial de seguimiento.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler de órdenes.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create crea una orden de la cuenta autenticada. El descuento de stock y el
// alta son transaccionales.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(GetAccountID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista órdenes (solo admin).
func (h *OrderHandler) List(c *fiber.Ctx) error {
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

// GetByID obtiene una orden (el dueño o un admin).
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), GetAccountID(c), GetRole(c))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Pay marca la orden como pagada con el resultado de la pasarela.
func (h *OrderHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Pay(c.Params("id"), GetAccountID(c), GetRole(c), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Deliver marca la orden como entregada (solo admin).
func (h *OrderHandler) Deliver(c *fiber.Ctx) error {
	out, err := h.uc.Deliver(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Delete elimina una orden (solo admin).
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return c.JSON(dto.MessageResponse{Message: "orden eliminada"})
}

// AddHistory agrega un evento de seguimiento (solo admin).
func (h *OrderHandler) AddHistory(c *fiber.Ctx) error {
	var in dto.OrderHistoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddHistory(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListHistory lista los eventos de seguimiento de una orden.
func (h *OrderHandler) ListHistory(c *fiber.Ctx) error {
	out, err := h.uc.ListHistory(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateHistory corrige un evento de seguimiento (solo admin).
func (h *OrderHandler) UpdateHistory(c *fiber.Ctx) error {
	var in dto.OrderHistoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateHistory(c.Params("historyId"), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// DeleteHistory elimina un evento de seguimiento (solo admin).
func (h *OrderHandler) DeleteHistory(c *fiber.Ctx) error {
	deleted, err := h.uc.DeleteHistory(c.Params("historyId"))
	if err != nil {
		return fail(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return c.JSON(dto.MessageResponse{Message: "evento eliminado"})
}
