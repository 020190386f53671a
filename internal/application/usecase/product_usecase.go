package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
	"github.com/jhoicas/Mercado-api/pkg/slug"
	"github.com/shopspring/decimal"
)

// ProductUseCase catálogo: alta con fotos, consulta, actualización y baja.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	photos     PhotoStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, photos PhotoStore) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, photos: photos}
}

// Create crea un producto del proveedor autenticado. El slug se deriva del
// nombre; las fotos se suben al bucket antes de persistir.
func (uc *ProductUseCase) Create(supplierID string, in dto.CreateProductRequest, uploads []PhotoUpload) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Description == "" || in.Origin == "" || in.NutritionFact == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 || in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.products.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SupplierID:    supplierID,
		CategoryID:    in.CategoryID,
		Name:          in.Name,
		Slug:          slug.Make(in.Name),
		Description:   in.Description,
		Price:         in.Price,
		Quantity:      in.Quantity,
		Origin:        in.Origin,
		NutritionFact: in.NutritionFact,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx := context.Background()
	for _, up := range uploads {
		photoID := uuid.New().String()
		key := fmt.Sprintf("products/%s/%s%s", product.ID, photoID, filepath.Ext(up.Filename))
		if err := uc.photos.Put(ctx, key, up.ContentType, up.Body); err != nil {
			return nil, fmt.Errorf("subir foto: %w", err)
		}
		product.Photos = append(product.Photos, entity.ProductPhoto{
			ID:        photoID,
			ProductID: product.ID,
			ObjectKey: key,
		})
	}

	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product)
}

// GetBySlug obtiene un producto por slug.
func (uc *ProductUseCase) GetBySlug(s string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product)
}

// List lista productos del más reciente al más antiguo.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.products.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un producto. Solo el proveedor dueño o un admin pueden
// hacerlo; el slug se rederiva si cambia el nombre.
func (uc *ProductUseCase) Update(id, actorID, actorRole string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if actorRole != entity.RoleAdmin && product.SupplierID != actorID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
		product.Slug = slug.Make(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Origin != nil {
		product.Origin = *in.Origin
	}
	if in.NutritionFact != nil {
		product.NutritionFact = *in.NutritionFact
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// Delete elimina un producto. Devuelve false si no existía.
func (uc *ProductUseCase) Delete(id, actorID, actorRole string) (bool, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}
	if actorRole != entity.RoleAdmin && product.SupplierID != actorID {
		return false, domain.ErrForbidden
	}
	return uc.products.Delete(id)
}

func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	resp := &dto.ProductResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		Quantity:      p.Quantity,
		Origin:        p.Origin,
		NutritionFact: p.NutritionFact,
		Photos:        make([]dto.PhotoResponse, 0, len(p.Photos)),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	ctx := context.Background()
	for _, photo := range p.Photos {
		url, err := uc.photos.PresignGet(ctx, photo.ObjectKey)
		if err != nil {
			return nil, fmt.Errorf("firmar URL de foto: %w", err)
		}
		resp.Photos = append(resp.Photos, dto.PhotoResponse{ID: photo.ID, URL: url})
	}
	return resp, nil
}
