package entity

import "time"

// Roles válidos para Account.
const (
	RoleUser     = "user"
	RoleSupplier = "supplier"
	RoleAdmin    = "admin"
)

// Estados de la cuenta.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Estados de aprobación del proveedor.
const (
	SupplierPending  = "pending"
	SupplierActive   = "active"
	SupplierInactive = "inactive"
)

// Address dirección postal del titular de la cuenta.
type Address struct {
	City       string
	Commune    string
	District   string
	Village    string
	Street     string
	HomeNumber string
}

// SupplierProfile campos adicionales cuando Role == "supplier".
// El tipo suma Account = usuario | proveedor se modela con este puntero
// discriminado por Role, en lugar de herencia de esquemas.
type SupplierProfile struct {
	FarmName        string
	HarvestSchedule *time.Time
	IsOrganic       bool
	// pending al registrarse; un admin lo pasa a active para habilitar el login.
	Status string
}

// Account representa una cuenta del sistema (usuario, proveedor o admin).
type Account struct {
	ID                string
	FirstName         string
	LastName          string
	Email             string
	PhoneNumber       string
	BirthDate         time.Time
	Gender            string // Male, Female, Other
	Address           Address
	ProfilePicture    string
	Role              string // user, supplier, admin
	PasswordHash      string // bcrypt, nunca plano en dominio después de persistir
	Verified          bool
	Status            string // active, inactive
	LastLogin         time.Time
	PasswordChangedAt time.Time
	Supplier          *SupplierProfile // nil salvo Role == "supplier"
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsSupplier indica si la cuenta es de proveedor.
func (a *Account) IsSupplier() bool {
	return a.Role == RoleSupplier
}

// PasswordHistoryEntry una contraseña anterior (hasheada) y cuándo se estableció.
type PasswordHistoryEntry struct {
	Hash      string
	ChangedAt time.Time
}
