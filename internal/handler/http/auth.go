package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/oredipendenti/backend-go/internal/domain/auth"
	"github.com/oredipendenti/backend-go/internal/handler/http/response"
	"github.com/oredipendenti/backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	response.SuccessWithMessage(w, "Login successful", tokenResponse)
}

// RefreshToken implements AuthHandler. The token is read from the cookie
// first, then from the body for clients that do not keep cookies.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := a.tokenFromRequest(r)
	if refreshToken == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokenResponse, err := a.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn))
	response.SuccessWithMessage(w, "Token refreshed", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := a.tokenFromRequest(r)
	if refreshToken != "" {
		if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
			slog.Error("Logout service error", "error", err)
			response.HandleError(w, err)
			return
		}
	}

	// Expire the cookie regardless of whether a token was presented.
	http.SetCookie(w, a.jwtService.RefreshTokenCookie("", 0))
	response.SuccessWithMessage(w, "Logged out", nil)
}

func (a *AuthHandlerImpl) tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var req auth.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}
