package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación del puerto ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	q     Querier
	table *Table[entity.Review]
}

// NewReviewRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q, table: NewTable[entity.Review](q, "reviews")}
}

// Create persiste una reseña nueva.
func (r *ReviewRepo) Create(review *entity.Review) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO reviews (id, account_id, product_id, description, rating, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		review.ID, review.AccountID, review.ProductID, review.Description, review.Rating,
		review.CreatedAt, review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// GetByID obtiene una reseña por ID.
func (r *ReviewRepo) GetByID(id string) (*entity.Review, error) {
	return r.table.GetBy("id", id)
}

// List lista reseñas de la más reciente a la más antigua.
func (r *ReviewRepo) List(limit, offset int) ([]*entity.Review, error) {
	return r.table.List("created_at DESC", limit, offset)
}

// ListByProduct lista las reseñas de un producto.
func (r *ReviewRepo) ListByProduct(productID string) ([]*entity.Review, error) {
	return r.table.ListBy("product_id", productID, "created_at DESC")
}

// Count cuenta todas las reseñas.
func (r *ReviewRepo) Count() (int, error) {
	return r.table.Count()
}

// CountByProduct cuenta las reseñas de un producto.
func (r *ReviewRepo) CountByProduct(productID string) (int, error) {
	return r.table.CountBy("product_id", productID)
}

// Update actualiza descripción y rating.
func (r *ReviewRepo) Update(review *entity.Review) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE reviews SET description = $2, rating = $3, updated_at = $4 WHERE id = $1`,
		review.ID, review.Description, review.Rating, review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// Delete elimina una reseña (los comentarios caen en cascada).
func (r *ReviewRepo) Delete(id string) (bool, error) {
	return r.table.DeleteBy("id", id)
}
