package dto

import "time"

// AddressDTO dirección postal en requests y responses.
type AddressDTO struct {
	City       string `json:"city,omitempty"`
	Commune    string `json:"commune,omitempty"`
	District   string `json:"district,omitempty"`
	Village    string `json:"village,omitempty"`
	Street     string `json:"street,omitempty"`
	HomeNumber string `json:"home_number,omitempty"`
}

// RegisterRequest entrada para registro. La presencia de cualquier campo de
// proveedor (farm_name, harvest_schedule, is_organic) clasifica la cuenta como
// supplier; si no, queda como user.
type RegisterRequest struct {
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phone_number"`
	BirthDate       time.Time  `json:"birth_date"`
	Gender          string     `json:"gender"`
	Address         AddressDTO `json:"address"`
	Password        string     `json:"password"`
	ConfirmPassword string     `json:"confirm_password"`

	// Campos de proveedor (opcionales)
	FarmName        string     `json:"farm_name,omitempty"`
	HarvestSchedule *time.Time `json:"harvest_schedule,omitempty"`
	IsOrganic       *bool      `json:"is_organic,omitempty"`
}

// HasSupplierFields indica si el payload trae campos exclusivos de proveedor.
func (r *RegisterRequest) HasSupplierFields() bool {
	return r.FarmName != "" || r.HarvestSchedule != nil || r.IsOrganic != nil
}

// UpdateAccountRequest entrada para actualizar el perfil. El email es inmutable:
// si viene, se ignora.
type UpdateAccountRequest struct {
	FirstName       *string     `json:"first_name"`
	LastName        *string     `json:"last_name"`
	PhoneNumber     *string     `json:"phone_number"`
	Gender          *string     `json:"gender"`
	Address         *AddressDTO `json:"address"`
	ProfilePicture  *string     `json:"profile_picture"`
	FarmName        *string     `json:"farm_name"`
	HarvestSchedule *time.Time  `json:"harvest_schedule"`
	IsOrganic       *bool       `json:"is_organic"`
}

// SupplierProfileResponse campos de proveedor en la respuesta.
type SupplierProfileResponse struct {
	FarmName        string     `json:"farm_name"`
	HarvestSchedule *time.Time `json:"harvest_schedule,omitempty"`
	IsOrganic       bool       `json:"is_organic"`
	Status          string     `json:"supplier_status"`
}

// AccountResponse salida de una cuenta (sin hash de contraseña).
type AccountResponse struct {
	ID             string                   `json:"id"`
	FirstName      string                   `json:"first_name"`
	LastName       string                   `json:"last_name"`
	Email          string                   `json:"email"`
	PhoneNumber    string                   `json:"phone_number,omitempty"`
	BirthDate      time.Time                `json:"birth_date"`
	Gender         string                   `json:"gender"`
	Address        AddressDTO               `json:"address"`
	ProfilePicture string                   `json:"profile_picture,omitempty"`
	Role           string                   `json:"role"`
	Verified       bool                     `json:"verified"`
	Status         string                   `json:"status"`
	LastLogin      time.Time                `json:"last_login"`
	Supplier       *SupplierProfileResponse `json:"supplier,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// AccountListResponse listado con conteo.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
