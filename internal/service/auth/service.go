package auth

import (
	"context"
	"errors"
	"time"

	"github.com/oredipendenti/backend-go/internal/domain/auth"
	"github.com/oredipendenti/backend-go/internal/domain/employee"
	"github.com/oredipendenti/backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	tokenRepo    auth.RefreshTokenRepository
	jwtService   jwt.Service
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	tokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService. Lookup failure and password mismatch
// report the same error so login probes learn nothing about the roster.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := s.employeeRepo.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, emp)
}

// Refresh implements auth.AuthService. Tokens rotate on every refresh; the
// presented token is revoked even when it is still valid.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	employeeID, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	storedEmployeeID, expiresAt, revoked, err := s.tokenRepo.Get(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if storedEmployeeID != employeeID {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if time.Now().Unix() >= expiresAt {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrEmployeeNotFound
		}
		return auth.TokenResponse{}, err
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, emp)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenRepo.Revoke(ctx, refreshToken)
	if err != nil && !errors.Is(err, auth.ErrInvalidToken) {
		return err
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, emp employee.Employee) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Name, emp.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := s.tokenRepo.Store(ctx, refreshToken, emp.ID, refreshExpiresAt); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshTokenExpiresIn: refreshExpiresAt,
		EmployeeID:            emp.ID,
		Name:                  emp.Name,
		IsAdmin:               emp.IsAdmin,
	}, nil
}
