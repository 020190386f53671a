package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// CartRepository puerto de persistencia para Cart. Un carrito por cuenta.
type CartRepository interface {
	GetByAccount(accountID string) (*entity.Cart, error)
	// Upsert crea o reemplaza el carrito de la cuenta junto con sus líneas.
	Upsert(cart *entity.Cart) error
	DeleteByAccount(accountID string) (bool, error)
}
