package auth

import "context"

// AuthService defines authentication business logic.
type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes a refresh token
	Logout(ctx context.Context, refreshToken string) error
}

// RefreshTokenRepository persists issued refresh tokens.
type RefreshTokenRepository interface {
	Store(ctx context.Context, token string, employeeID string, expiresAt int64) error
	Get(ctx context.Context, token string) (employeeID string, expiresAt int64, revoked bool, err error)
	Revoke(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
