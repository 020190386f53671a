package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
	"github.com/jhoicas/Mercado-api/pkg/slug"
)

// CategoryUseCase administración de categorías del catálogo (solo admin escribe).
type CategoryUseCase struct {
	categories repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// Create crea una categoría. El nombre es único y el slug se deriva del nombre.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categories.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		ID:   uuid.New().String(),
		Name: in.Name,
		Slug: slug.Make(in.Name),
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	return categoryResponse(category), nil
}

// List lista todas las categorías.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *categoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// GetBySlug obtiene una categoría por slug.
func (uc *CategoryUseCase) GetBySlug(s string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return categoryResponse(category), nil
}

// Update renombra la categoría identificada por slug; el slug se rederiva.
func (uc *CategoryUseCase) Update(s string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categories.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	existing, err := uc.categories.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != category.ID {
		return nil, domain.ErrDuplicate
	}
	category.Name = in.Name
	category.Slug = slug.Make(in.Name)
	if err := uc.categories.Update(category); err != nil {
		return nil, err
	}
	return categoryResponse(category), nil
}

// Delete elimina la categoría por slug. Devuelve false si no existía.
func (uc *CategoryUseCase) Delete(s string) (bool, error) {
	return uc.categories.DeleteBySlug(s)
}

func categoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug}
}
