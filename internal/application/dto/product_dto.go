package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest campos del formulario multipart de creación de producto.
// Las fotos llegan como archivos; el proveedor sale del token.
type CreateProductRequest struct {
	Name          string          `json:"name" form:"name"`
	Description   string          `json:"description" form:"description"`
	Price         decimal.Decimal `json:"price" form:"price"`
	CategoryID    string          `json:"category_id" form:"category_id"`
	Quantity      int             `json:"quantity" form:"quantity"`
	Origin        string          `json:"origin" form:"origin"`
	NutritionFact string          `json:"nutrition_fact" form:"nutrition_fact"`
}

// UpdateProductRequest campos opcionales a actualizar.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	CategoryID    *string          `json:"category_id"`
	Quantity      *int             `json:"quantity"`
	Origin        *string          `json:"origin"`
	NutritionFact *string          `json:"nutrition_fact"`
}

// PhotoResponse foto con URL de lectura firmada.
type PhotoResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SupplierID    string          `json:"supplier_id"`
	CategoryID    string          `json:"category_id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	Origin        string          `json:"origin"`
	NutritionFact string          `json:"nutrition_fact"`
	Photos        []PhotoResponse `json:"photos"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
