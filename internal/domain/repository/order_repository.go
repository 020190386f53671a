package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// OrderRepository puerto de persistencia para Order (con sus líneas).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)
	Update(order *entity.Order) error
	Delete(id string) (bool, error)
}

// OrderHistoryRepository puerto para los eventos de seguimiento de una orden.
type OrderHistoryRepository interface {
	Create(h *entity.OrderHistory) error
	GetByID(id string) (*entity.OrderHistory, error)
	ListByOrder(orderID string) ([]*entity.OrderHistory, error)
	Update(h *entity.OrderHistory) error
	Delete(id string) (bool, error)
}
