package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
)

// CartHandler carrito de compras de la cuenta autenticada.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler de carritos.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Save crea o reemplaza el carrito. Los precios los fija el servidor.
func (h *CartHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveCartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Save(c.Params("userId"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get obtiene el carrito de la cuenta.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByAccount(c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Delete vacía el carrito de la cuenta.
func (h *CartHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return c.JSON(dto.MessageResponse{Message: "carrito vaciado"})
}
