package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.VerificationTokenRepository = (*VerificationRepo)(nil)

// VerificationRepo implementación del puerto VerificationTokenRepository sobre
// PostgreSQL. account_id es la clave: a lo sumo un token por cuenta.
type VerificationRepo struct {
	q Querier
}

// NewVerificationRepository construye el adaptador.
func NewVerificationRepository(q Querier) *VerificationRepo {
	return &VerificationRepo{q: q}
}

// Upsert inserta el token o reemplaza el anterior de la cuenta.
func (r *VerificationRepo) Upsert(token *entity.VerificationToken) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO verification_tokens (account_id, token, created_at, expires_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (account_id) DO UPDATE
		 SET token = EXCLUDED.token, created_at = EXCLUDED.created_at, expires_at = EXCLUDED.expires_at`,
		token.AccountID, token.Token, token.CreatedAt, token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("upsert verification token: %w", err)
	}
	return nil
}

// GetByAccount obtiene el token vigente de la cuenta, (nil, nil) si no hay.
func (r *VerificationRepo) GetByAccount(accountID string) (*entity.VerificationToken, error) {
	var t entity.VerificationToken
	err := r.q.QueryRow(context.Background(),
		`SELECT account_id, token, created_at, expires_at FROM verification_tokens WHERE account_id = $1`,
		accountID,
	).Scan(&t.AccountID, &t.Token, &t.CreatedAt, &t.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get verification token: %w", err)
	}
	return &t, nil
}

// Delete borra el token de la cuenta (consumo de un solo uso).
func (r *VerificationRepo) Delete(accountID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM verification_tokens WHERE account_id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("delete verification token: %w", err)
	}
	return nil
}
