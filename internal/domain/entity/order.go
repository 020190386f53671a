package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem línea de una orden, con el precio al momento de la compra.
type OrderItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// PaymentResult resultado reportado por la pasarela al marcar la orden como pagada.
type PaymentResult struct {
	ID           string
	Status       string
	UpdateTime   string
	EmailAddress string
}

// Order orden de compra. La creación descuenta stock de los productos en la misma
// transacción; los totales se calculan en el caso de uso.
type Order struct {
	ID              string
	AccountID       string
	Items           []OrderItem
	ShippingAddress string
	ShippingCity    string
	PaymentMethod   string
	PaymentResult   PaymentResult
	ItemsPrice      decimal.Decimal
	TaxPrice        decimal.Decimal
	ShippingPrice   decimal.Decimal
	TotalPrice      decimal.Decimal
	IsPaid          bool
	PaidAt          *time.Time
	IsDelivered     bool
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
