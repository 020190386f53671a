package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación del puerto SessionRepository sobre PostgreSQL.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el adaptador de persistencia para sesiones.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create persiste la sesión emitida en el login.
func (r *SessionRepo) Create(session *entity.Session) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO sessions (id, account_id, access_token, refresh_token, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		session.ID, session.AccountID, session.AccessToken, session.RefreshToken, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByAccountAndAccessToken busca la sesión viva que respalda el token
// presentado; (nil, nil) si el token fue invalidado por logout.
func (r *SessionRepo) GetByAccountAndAccessToken(accountID, accessToken string) (*entity.Session, error) {
	return r.getWhere("account_id = $1 AND access_token = $2", accountID, accessToken)
}

// GetByRefreshToken busca la sesión por su token de refresco.
func (r *SessionRepo) GetByRefreshToken(refreshToken string) (*entity.Session, error) {
	return r.getWhere("refresh_token = $1", refreshToken)
}

func (r *SessionRepo) getWhere(cond string, args ...any) (*entity.Session, error) {
	query := `SELECT id, account_id, access_token, refresh_token, created_at FROM sessions WHERE ` + cond
	var s entity.Session
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.AccountID, &s.AccessToken, &s.RefreshToken, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// UpdateAccessToken reemplaza el token de acceso de la sesión (refresh).
func (r *SessionRepo) UpdateAccessToken(sessionID, accessToken string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sessions SET access_token = $2 WHERE id = $1`,
		sessionID, accessToken,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// DeleteByAccount cierra todas las sesiones de la cuenta (logout).
func (r *SessionRepo) DeleteByAccount(accountID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sessions WHERE account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}
