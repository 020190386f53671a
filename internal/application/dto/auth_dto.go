package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida del login: ambos tokens van también como cookies httpOnly.
type LoginResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token"`
	Reactivated  bool            `json:"reactivated,omitempty"`
	Account      AccountResponse `json:"account"`
}

// RefreshRequest entrada para renovar el token de acceso. El token de refresco
// puede venir en el cuerpo o en la cookie refreshToken.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse salida con el nuevo token de acceso.
type RefreshResponse struct {
	Token string `json:"token"`
}
