package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetBySlug(slug string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	DeleteBySlug(slug string) (bool, error)
}
