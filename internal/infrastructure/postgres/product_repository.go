package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Cada producto se devuelve con sus fotos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, supplier_id, category_id, name, slug, description, price, quantity,
	origin, nutrition_fact, created_at, updated_at`

// Create persiste un producto nuevo junto con sus fotos.
func (r *ProductRepo) Create(product *entity.Product) error {
	ctx := context.Background()
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SupplierID, product.CategoryID, product.Name, product.Slug,
		product.Description, product.Price, product.Quantity,
		product.Origin, product.NutritionFact, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	for _, photo := range product.Photos {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_photos (id, product_id, object_key) VALUES ($1, $2, $3)`,
			photo.ID, photo.ProductID, photo.ObjectKey,
		)
		if err != nil {
			return fmt.Errorf("insert product photo: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getWhere("id = $1", id)
}

// GetBySlug obtiene un producto por slug.
func (r *ProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	return r.getWhere("slug = $1", slug)
}

// GetByName obtiene un producto por nombre.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.getWhere("name = $1", name)
}

func (r *ProductRepo) getWhere(cond string, args ...any) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + cond
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.SupplierID, &p.CategoryID, &p.Name, &p.Slug, &p.Description,
		&p.Price, &p.Quantity, &p.Origin, &p.NutritionFact, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if err := r.loadPhotos(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista productos del más reciente al más antiguo.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		err := rows.Scan(
			&p.ID, &p.SupplierID, &p.CategoryID, &p.Name, &p.Slug, &p.Description,
			&p.Price, &p.Quantity, &p.Origin, &p.NutritionFact, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		if err := r.loadPhotos(p); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update actualiza un producto (las fotos no cambian por esta vía).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET
			category_id = $2, name = $3, slug = $4, description = $5, price = $6,
			quantity = $7, origin = $8, nutrition_fact = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Slug, product.Description,
		product.Price, product.Quantity, product.Origin, product.NutritionFact, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto; las fotos caen en cascada. Devuelve false si no existía.
func (r *ProductRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DecrementQuantity descuenta stock de forma atómica: la condición en el WHERE
// evita que dos órdenes concurrentes dejen el stock negativo.
func (r *ProductRepo) DecrementQuantity(productID string, qty int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = quantity - $2, updated_at = now()
		 WHERE id = $1 AND quantity >= $2`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *ProductRepo) loadPhotos(p *entity.Product) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, product_id, object_key FROM product_photos WHERE product_id = $1 ORDER BY id`,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("list product photos: %w", err)
	}
	defer rows.Close()
	p.Photos = nil
	for rows.Next() {
		var photo entity.ProductPhoto
		if err := rows.Scan(&photo.ID, &photo.ProductID, &photo.ObjectKey); err != nil {
			return fmt.Errorf("scan product photo: %w", err)
		}
		p.Photos = append(p.Photos, photo)
	}
	return rows.Err()
}
