package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// SessionRepository puerto de persistencia para las sesiones emitidas en el login.
type SessionRepository interface {
	Create(session *entity.Session) error
	// GetByAccountAndAccessToken busca la sesión viva que respalda un token de
	// acceso presentado. (nil, nil) si no existe: el token fue invalidado.
	GetByAccountAndAccessToken(accountID, accessToken string) (*entity.Session, error)
	GetByRefreshToken(refreshToken string) (*entity.Session, error)
	// UpdateAccessToken reemplaza el token de acceso de la sesión (refresh).
	UpdateAccessToken(sessionID, accessToken string) error
	DeleteByAccount(accountID string) error
}
