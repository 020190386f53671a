package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.OrderHistoryRepository = (*OrderHistoryRepo)(nil)

// OrderHistoryRepo implementación del puerto OrderHistoryRepository sobre PostgreSQL.
type OrderHistoryRepo struct {
	q     Querier
	table *Table[entity.OrderHistory]
}

// NewOrderHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderHistoryRepository(q Querier) *OrderHistoryRepo {
	return &OrderHistoryRepo{q: q, table: NewTable[entity.OrderHistory](q, "order_history")}
}

// Create persiste un evento de seguimiento.
func (r *OrderHistoryRepo) Create(h *entity.OrderHistory) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO order_history (id, order_id, status, created_at) VALUES ($1, $2, $3, $4)`,
		h.ID, h.OrderID, h.Status, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order history: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID.
func (r *OrderHistoryRepo) GetByID(id string) (*entity.OrderHistory, error) {
	return r.table.GetBy("id", id)
}

// ListByOrder lista los eventos de una orden en orden cronológico.
func (r *OrderHistoryRepo) ListByOrder(orderID string) ([]*entity.OrderHistory, error) {
	return r.table.ListBy("order_id", orderID, "created_at")
}

// Update corrige el estado de un evento.
func (r *OrderHistoryRepo) Update(h *entity.OrderHistory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE order_history SET status = $2 WHERE id = $1`,
		h.ID, h.Status,
	)
	if err != nil {
		return fmt.Errorf("update order history: %w", err)
	}
	return nil
}

// Delete elimina un evento. Devuelve false si no existía.
func (r *OrderHistoryRepo) Delete(id string) (bool, error) {
	return r.table.DeleteBy("id", id)
}
