package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItemRequest línea del carrito en la entrada: producto y cantidad.
// El precio unitario lo fija el servidor desde el catálogo.
type CartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaveCartRequest entrada para crear o reemplazar el carrito de una cuenta.
type SaveCartRequest struct {
	Items []CartItemRequest `json:"items"`
}

// CartItemResponse línea con precio unitario y total calculados.
type CartItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// CartResponse carrito con su total.
type CartResponse struct {
	ID        string             `json:"id"`
	AccountID string             `json:"account_id"`
	Items     []CartItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
