package otps

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/textfix/internal/common"
	"github.com/dmitrijs2005/textfix/internal/dbx"
	"github.com/dmitrijs2005/textfix/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert stores a fresh secret for the email, replacing any previous code
// and clearing its verification.
func (r *PostgresRepository) Upsert(ctx context.Context, otp *models.OTP) error {
	query :=
		`INSERT INTO otps (email, secret, expires_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE
		 SET secret = EXCLUDED.secret, expires_at = EXCLUDED.expires_at, verified_at = NULL, created_at = now()
		 `

	if _, err := r.db.ExecContext(ctx, query, otp.Email, otp.Secret, otp.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, email string) (*models.OTP, error) {
	query :=
		`SELECT email, secret, expires_at, verified_at, created_at FROM otps
		 WHERE email = $1
		 `

	otp := &models.OTP{}
	var verifiedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, email).Scan(&otp.Email, &otp.Secret, &otp.ExpiresAt, &verifiedAt, &otp.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if verifiedAt.Valid {
		otp.VerifiedAt = &verifiedAt.Time
	}

	return otp, nil
}

// MarkVerified records the verification once. A missing or already verified
// row is common.ErrorNotFound.
func (r *PostgresRepository) MarkVerified(ctx context.Context, email string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE otps SET verified_at = $2 WHERE email = $1 AND verified_at IS NULL`, email, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM otps WHERE email = $1`, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
