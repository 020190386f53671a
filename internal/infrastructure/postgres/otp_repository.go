package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.OTPRepository = (*OTPRepo)(nil)

// OTPRepo implementación del puerto OTPRepository sobre PostgreSQL.
type OTPRepo struct {
	q Querier
}

// NewOTPRepository construye el adaptador.
func NewOTPRepository(q Querier) *OTPRepo {
	return &OTPRepo{q: q}
}

// Create persiste un código nuevo.
func (r *OTPRepo) Create(otp *entity.OTP) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO otps (id, email, code, verified, created_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		otp.ID, otp.Email, otp.Code, otp.Verified, otp.CreatedAt, otp.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert otp: %w", err)
	}
	return nil
}

// LatestByEmail devuelve el código sin expirar más reciente del email; los
// anteriores quedan supersedidos aunque sigan en la tabla.
func (r *OTPRepo) LatestByEmail(email string) (*entity.OTP, error) {
	var o entity.OTP
	err := r.q.QueryRow(context.Background(),
		`SELECT id, email, code, verified, created_at, expires_at
		 FROM otps WHERE email = $1 AND expires_at > $2
		 ORDER BY created_at DESC LIMIT 1`,
		email, time.Now(),
	).Scan(&o.ID, &o.Email, &o.Code, &o.Verified, &o.CreatedAt, &o.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get otp: %w", err)
	}
	return &o, nil
}

// MarkVerified marca el código como verificado (requisito para reset).
func (r *OTPRepo) MarkVerified(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE otps SET verified = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("update otp: %w", err)
	}
	return nil
}

// DeleteByEmail purga todos los códigos del email (tras un reset exitoso).
func (r *OTPRepo) DeleteByEmail(email string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM otps WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("delete otps: %w", err)
	}
	return nil
}
