package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/oredipendenti/backend-go/internal/domain/auth"
	"github.com/oredipendenti/backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// EmployeeID extracts the authenticated employee id from the request token.
func EmployeeID(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	id, ok := claims["employee_id"].(string)
	return id, ok && id != ""
}

// IsAdmin reports whether the request token carries the admin claim.
func IsAdmin(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	admin, ok := claims["is_admin"].(bool)
	return ok && admin
}
