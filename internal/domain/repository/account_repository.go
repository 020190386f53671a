package repository

import (
	"time"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no hay fila.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	GetByEmail(email string) (*entity.Account, error)
	Update(account *entity.Account) error
	List(limit, offset int) ([]*entity.Account, error)
	ListSuppliers(limit, offset int) ([]*entity.Account, error)
	Count() (int, error)
	CountSuppliers() (int, error)
	// Delete borra definitivamente la cuenta. Devuelve false si no existía.
	Delete(id string) (bool, error)

	// Historial de contraseñas: toda contraseña establecida queda registrada.
	PasswordHistory(accountID string) ([]entity.PasswordHistoryEntry, error)
	AppendPasswordHistory(accountID, hash string, changedAt time.Time) error
}
