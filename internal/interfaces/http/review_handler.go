package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
)

// ReviewHandler reseñas de productos, comentarios y respuestas.
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

// NewReviewHandler construye el handler de reseñas.
func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Create crea una reseña (solo rol user).
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(GetAccountID(c), GetRole(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista reseñas paginadas.
func (h *ReviewHandler) List(c *fiber.Ctx) error {
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

// ListByProduct lista las reseñas de un producto.
func (h *ReviewHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una reseña.
func (h *ReviewHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Update actualiza una reseña (el autor o un admin).
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), GetAccountID(c), GetRole(c), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Delete elimina una reseña (el autor o un admin).
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Params("id"), GetAccountID(c), GetRole(c))
	if err != nil {
		return fail(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return c.JSON(dto.MessageResponse{Message: "reseña eliminada"})
}

// AddComment comenta una reseña.
func (h *ReviewHandler) AddComment(c *fiber.Ctx) error {
	var in dto.CreateCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddComment(c.Params("id"), GetAccountID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListComments lista los comentarios de una reseña con sus respuestas.
func (h *ReviewHandler) ListComments(c *fiber.Ctx) error {
	out, err := h.uc.ListComments(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateComment edita un comentario (el autor o un admin).
func (h *ReviewHandler) UpdateComment(c *fiber.Ctx) error {
	var in dto.UpdateCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateComment(c.Params("commentId"), GetAccountID(c), GetRole(c), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// DeleteComment borra un comentario y sus respuestas (el autor o un admin).
func (h *ReviewHandler) DeleteComment(c *fiber.Ctx) error {
	deleted, err := h.uc.DeleteComment(c.Params("commentId"), GetAccountID(c), GetRole(c))
	if err != nil {
		return fail(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return c.JSON(dto.MessageResponse{Message: "comentario eliminado"})
}

// AddReply responde a un comentario.
func (h *ReviewHandler) AddReply(c *fiber.Ctx) error {
	var in dto.CreateReplyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddReply(c.Params("commentId"), GetAccountID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
