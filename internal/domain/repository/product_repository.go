package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// ProductRepository puerto de persistencia para Product (con sus fotos).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySlug(slug string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// List devuelve productos del más reciente al más antiguo.
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) (bool, error)
	// DecrementQuantity descuenta stock; devuelve ErrInsufficientStock si el
	// stock disponible es menor que qty.
	DecrementQuantity(productID string, qty int) error
}
