package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oredipendenti/backend-go/internal/domain/auth"
	"github.com/oredipendenti/backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Store implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, token string, employeeID string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (token, employee_id, expires_at)
		VALUES ($1, $2, $3)
	`

	_, err := q.Exec(ctx, query, token, employeeID, time.Unix(expiresAt, 0))
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// Get implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Get(ctx context.Context, token string) (string, int64, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, expires_at, revoked
		FROM refresh_tokens
		WHERE token = $1
	`

	var (
		employeeID string
		expiresAt  time.Time
		revoked    bool
	)
	err := q.QueryRow(ctx, query, token).Scan(&employeeID, &expiresAt, &revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, false, auth.ErrInvalidToken
		}
		return "", 0, false, fmt.Errorf("failed to get refresh token: %w", err)
	}

	return employeeID, expiresAt.Unix(), revoked, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE refresh_tokens SET revoked = TRUE WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrInvalidToken
	}

	return nil
}

// DeleteExpired implements auth.RefreshTokenRepository. Run from the nightly
// cleanup job.
func (r *refreshTokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}
