package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// CartUseCase carrito de compras: un carrito por cuenta, precios fijados por el
// servidor desde el catálogo.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Save crea o reemplaza el carrito de la cuenta. Cada línea toma el precio
// unitario vigente del catálogo; el total por línea y el total del carrito se
// recalculan en el servidor, nunca se aceptan del cliente.
func (uc *CartUseCase) Save(accountID string, in dto.SaveCartRequest) (*dto.CartResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	cart := &entity.Cart{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Items:     make([]entity.CartItem, 0, len(in.Items)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	existing, err := uc.carts.GetByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		cart.ID = existing.ID
		cart.CreatedAt = existing.CreatedAt
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.products.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}
	cart.Recalculate()
	if err := uc.carts.Upsert(cart); err != nil {
		return nil, err
	}
	return cartResponse(cart), nil
}

// GetByAccount obtiene el carrito de la cuenta, nil si no tiene.
func (uc *CartUseCase) GetByAccount(accountID string) (*dto.CartResponse, error) {
	cart, err := uc.carts.GetByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, nil
	}
	return cartResponse(cart), nil
}

// Delete vacía el carrito de la cuenta. Devuelve false si no tenía.
func (uc *CartUseCase) Delete(accountID string) (bool, error) {
	return uc.carts.DeleteByAccount(accountID)
}

func cartResponse(c *entity.Cart) *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, dto.CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	return &dto.CartResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		Items:     items,
		Total:     c.Total,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
