package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
// Un carrito por cuenta; Upsert reemplaza las líneas completas.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de persistencia para carritos.
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// GetByAccount obtiene el carrito de la cuenta con sus líneas, (nil, nil) si no hay.
func (r *CartRepo) GetByAccount(accountID string) (*entity.Cart, error) {
	ctx := context.Background()
	var c entity.Cart
	err := r.q.QueryRow(ctx,
		`SELECT id, account_id, total, created_at, updated_at FROM carts WHERE account_id = $1`,
		accountID,
	).Scan(&c.ID, &c.AccountID, &c.Total, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT product_id, quantity, unit_price, total FROM cart_items WHERE cart_id = $1`,
		c.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice, &item.Total); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		c.Items = append(c.Items, item)
	}
	return &c, rows.Err()
}

// Upsert crea o reemplaza el carrito de la cuenta junto con sus líneas.
func (r *CartRepo) Upsert(cart *entity.Cart) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`INSERT INTO carts (id, account_id, total, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (account_id) DO UPDATE
		 SET total = EXCLUDED.total, updated_at = EXCLUDED.updated_at`,
		cart.ID, cart.AccountID, cart.Total, cart.CreatedAt, cart.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert cart: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cart.ID); err != nil {
		return fmt.Errorf("clear cart items: %w", err)
	}
	for _, item := range cart.Items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO cart_items (cart_id, product_id, quantity, unit_price, total)
			 VALUES ($1, $2, $3, $4, $5)`,
			cart.ID, item.ProductID, item.Quantity, item.UnitPrice, item.Total,
		)
		if err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}
	return nil
}

// DeleteByAccount vacía el carrito de la cuenta. Devuelve false si no tenía.
func (r *CartRepo) DeleteByAccount(accountID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM carts WHERE account_id = $1`, accountID)
	if err != nil {
		return false, fmt.Errorf("delete cart: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
