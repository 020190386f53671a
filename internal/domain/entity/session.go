package entity

import "time"

// Session registro de sesión emitido en el login. El middleware de auth exige que
// exista una fila viva con el token de acceso presentado: borrar la sesión
// (logout) invalida los tokens antes de su expiración JWT.
type Session struct {
	ID           string
	AccountID    string
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
}
