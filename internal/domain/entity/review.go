package entity

import "time"

// Review reseña de un producto escrita por una cuenta con rol "user".
// Los tags db alimentan el repositorio genérico (pgx RowToStructByName).
type Review struct {
	ID          string    `db:"id"`
	AccountID   string    `db:"account_id"`
	ProductID   string    `db:"product_id"`
	Description string    `db:"description"`
	Rating      int       `db:"rating"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
