package entity

import "time"

// Estados posibles de una entrada del historial de órdenes.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
	OrderRefunded   = "refunded"
)

// ValidOrderStatus indica si s es un estado de historial reconocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

// OrderHistory evento de seguimiento de una orden.
// Los tags db alimentan el repositorio genérico (pgx RowToStructByName).
type OrderHistory struct {
	ID        string    `db:"id"`
	OrderID   string    `db:"order_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
