package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

type OtpRepository struct {
	db *pgxpool.Pool
}

func NewOtpRepository(db *pgxpool.Pool) *OtpRepository {
	return &OtpRepository{db: db}
}

func (r *OtpRepository) SaveOtp(ctx context.Context, otp entity.Otp) error {
	q := `INSERT INTO otps (id, email, code_hash, expires_at, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, q, otp.ID, otp.Email, otp.CodeHash, otp.ExpiresAt, otp.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *OtpRepository) OtpByEmail(ctx context.Context, email string) (entity.Otp, error) {
	var otp entity.Otp

	q := `SELECT id, email, code_hash, expires_at, created_at FROM otps WHERE email = $1`

	err := r.db.QueryRow(ctx, q, email).Scan(&otp.ID, &otp.Email, &otp.CodeHash, &otp.ExpiresAt, &otp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return otp, entity.ErrNotFound
		}

		return otp, err
	}

	return otp, nil
}

func (r *OtpRepository) DeleteOtp(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM otps WHERE id = $1`

	_, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *OtpRepository) DeleteByEmail(ctx context.Context, email string) error {
	q := `DELETE FROM otps WHERE email = $1`

	_, err := r.db.Exec(ctx, q, email)
	if err != nil {
		return err
	}

	return nil
}

// DeleteExpiredBefore removes codes whose expiry is older than the given moment.
func (r *OtpRepository) DeleteExpiredBefore(ctx context.Context, before time.Time) (int64, error) {
	q := `DELETE FROM otps WHERE expires_at < $1`

	result, err := r.db.Exec(ctx, q, before)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
