package dto

// CreateCategoryRequest entrada para crear/renombrar una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryListResponse listado completo (las categorías no se paginan).
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}
