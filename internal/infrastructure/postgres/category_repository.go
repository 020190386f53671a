package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// Las lecturas van por la tabla genérica; las escrituras son explícitas.
type CategoryRepo struct {
	q     Querier
	table *Table[entity.Category]
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q, table: NewTable[entity.Category](q, "categories")}
}

// Create persiste una categoría nueva.
func (r *CategoryRepo) Create(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categories (id, name, slug) VALUES ($1, $2, $3)`,
		category.ID, category.Name, category.Slug,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.table.GetBy("id", id)
}

// GetBySlug obtiene una categoría por slug.
func (r *CategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	return r.table.GetBy("slug", slug)
}

// GetByName obtiene una categoría por nombre.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	return r.table.GetBy("name", name)
}

// List lista todas las categorías por nombre.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	return r.table.List("name", 0, 0)
}

// Update actualiza nombre y slug.
func (r *CategoryRepo) Update(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET name = $2, slug = $3 WHERE id = $1`,
		category.ID, category.Name, category.Slug,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteBySlug elimina la categoría por slug. Devuelve false si no existía.
func (r *CategoryRepo) DeleteBySlug(slug string) (bool, error) {
	return r.table.DeleteBy("slug", slug)
}
