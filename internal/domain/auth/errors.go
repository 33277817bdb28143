package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials  = errors.New("invalid name or password")
	ErrInvalidToken        = errors.New("invalid or missing token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrAdminRequired       = errors.New("admin privilege required")
)
