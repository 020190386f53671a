package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de la orden en la entrada.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest entrada para crear una orden. Los precios por línea y los
// totales los calcula el servidor desde el catálogo.
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress string             `json:"shipping_address"`
	ShippingCity    string             `json:"shipping_city"`
	PaymentMethod   string             `json:"payment_method"`
	TaxPrice        decimal.Decimal    `json:"tax_price"`
	ShippingPrice   decimal.Decimal    `json:"shipping_price"`
}

// PayOrderRequest resultado de pago reportado por la pasarela.
type PayOrderRequest struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

// OrderItemResponse línea de la orden en la salida.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID              string              `json:"id"`
	AccountID       string              `json:"account_id"`
	Items           []OrderItemResponse `json:"items"`
	ShippingAddress string              `json:"shipping_address"`
	ShippingCity    string              `json:"shipping_city"`
	PaymentMethod   string              `json:"payment_method"`
	ItemsPrice      decimal.Decimal     `json:"items_price"`
	TaxPrice        decimal.Decimal     `json:"tax_price"`
	ShippingPrice   decimal.Decimal     `json:"shipping_price"`
	TotalPrice      decimal.Decimal     `json:"total_price"`
	IsPaid          bool                `json:"is_paid"`
	PaidAt          *time.Time          `json:"paid_at,omitempty"`
	IsDelivered     bool                `json:"is_delivered"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderListResponse listado paginado.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// OrderHistoryRequest entrada para crear/actualizar un evento de seguimiento.
type OrderHistoryRequest struct {
	Status string `json:"status"`
}

// OrderHistoryResponse evento de seguimiento.
type OrderHistoryResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
