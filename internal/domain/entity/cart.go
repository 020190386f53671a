package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem línea del carrito. UnitPrice se copia del producto al agregar;
// Total = UnitPrice × Quantity, calculado al persistir.
type CartItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Cart carrito de compras, uno por cuenta. Total es la suma de las líneas.
type Cart struct {
	ID        string
	AccountID string
	Items     []CartItem
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recalculate fija UnitPrice ya asignado, recalcula el total por línea y el total
// del carrito.
func (c *Cart) Recalculate() {
	total := decimal.Zero
	for i := range c.Items {
		c.Items[i].Total = c.Items[i].UnitPrice.Mul(decimal.NewFromInt(int64(c.Items[i].Quantity)))
		total = total.Add(c.Items[i].Total)
	}
	c.Total = total
}
