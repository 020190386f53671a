package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx). Cada orden se devuelve con sus líneas.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `
	id, account_id, shipping_address, shipping_city, payment_method,
	payment_result_id, payment_result_status, payment_result_update_time, payment_result_email,
	items_price, tax_price, shipping_price, total_price,
	is_paid, paid_at, is_delivered, delivered_at, created_at, updated_at`

// Create persiste una orden nueva junto con sus líneas.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.AccountID, order.ShippingAddress, order.ShippingCity, order.PaymentMethod,
		order.PaymentResult.ID, order.PaymentResult.Status, order.PaymentResult.UpdateTime, order.PaymentResult.EmailAddress,
		order.ItemsPrice, order.TaxPrice, order.ShippingPrice, order.TotalPrice,
		order.IsPaid, order.PaidAt, order.IsDelivered, order.DeliveredAt,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, item := range order.Items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)`,
			order.ID, item.ProductID, item.Quantity, item.Price,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden con sus líneas, (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadItems(order); err != nil {
		return nil, err
	}
	return order, nil
}

// List lista órdenes de la más reciente a la más antigua.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, order := range list {
		if err := r.loadItems(order); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza el estado de la orden (pago, entrega); las líneas no cambian.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET
			payment_result_id = $2, payment_result_status = $3,
			payment_result_update_time = $4, payment_result_email = $5,
			is_paid = $6, paid_at = $7, is_delivered = $8, delivered_at = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID,
		order.PaymentResult.ID, order.PaymentResult.Status,
		order.PaymentResult.UpdateTime, order.PaymentResult.EmailAddress,
		order.IsPaid, order.PaidAt, order.IsDelivered, order.DeliveredAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina una orden; líneas e historial caen en cascada.
func (r *OrderRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *OrderRepo) loadItems(order *entity.Order) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id, quantity, price FROM order_items WHERE order_id = $1`,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.Price); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.AccountID, &o.ShippingAddress, &o.ShippingCity, &o.PaymentMethod,
		&o.PaymentResult.ID, &o.PaymentResult.Status, &o.PaymentResult.UpdateTime, &o.PaymentResult.EmailAddress,
		&o.ItemsPrice, &o.TaxPrice, &o.ShippingPrice, &o.TotalPrice,
		&o.IsPaid, &o.PaidAt, &o.IsDelivered, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
