package dto

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// AccountResponseFrom mapea una cuenta de dominio a su respuesta pública.
// El hash de contraseña nunca se serializa.
func AccountResponseFrom(a *entity.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	resp := &AccountResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		BirthDate:   a.BirthDate,
		Gender:      a.Gender,
		Address: AddressDTO{
			City:       a.Address.City,
			Commune:    a.Address.Commune,
			District:   a.Address.District,
			Village:    a.Address.Village,
			Street:     a.Address.Street,
			HomeNumber: a.Address.HomeNumber,
		},
		ProfilePicture: a.ProfilePicture,
		Role:           a.Role,
		Verified:       a.Verified,
		Status:         a.Status,
		LastLogin:      a.LastLogin,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.Supplier != nil {
		resp.Supplier = &SupplierProfileResponse{
			FarmName:        a.Supplier.FarmName,
			HarvestSchedule: a.Supplier.HarvestSchedule,
			IsOrganic:       a.Supplier.IsOrganic,
			Status:          a.Supplier.Status,
		}
	}
	return resp
}
