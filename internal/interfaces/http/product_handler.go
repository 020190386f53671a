package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/application/usecase"
)

// ProductHandler catálogo de productos, con fotos multipart.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create crea un producto del proveedor autenticado. El formulario es
// multipart: campos de texto más archivos "photos".
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	uploads, err := photoUploads(c)
	if err != nil {
		return badBody(c)
	}
	defer closeUploads(uploads)
	out, err := h.uc.Create(GetAccountID(c), in, uploads)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista productos paginados.
func (h *ProductHandler) List(c *fiber.Ctx) error {
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

// GetByID obtiene un producto por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// GetBySlug obtiene un producto por slug.
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Update actualiza un producto (el proveedor dueño o un admin).
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
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

// Delete elimina un producto (el proveedor dueño o un admin).
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Params("id"), GetAccountID(c), GetRole(c))
	if err != nil {
		return fail(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// photoUploads abre los archivos "photos" del formulario multipart.
func photoUploads(c *fiber.Ctx) ([]usecase.PhotoUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Sin formulario multipart: producto sin fotos.
		return nil, nil
	}
	var uploads []usecase.PhotoUpload
	for _, header := range form.File["photos"] {
		f, err := header.Open()
		if err != nil {
			closeUploads(uploads)
			return nil, err
		}
		uploads = append(uploads, usecase.PhotoUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        f,
		})
	}
	return uploads, nil
}

func closeUploads(uploads []usecase.PhotoUpload) {
	for _, up := range uploads {
		if closer, ok := up.Body.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}
}
