package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ukydev/fleet-logistics/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const SubjectContextKey contextKey = "subject"

// AuthMiddleware guards HTTP endpoints with bearer-token authentication.
type AuthMiddleware struct {
	authService *auth.Service
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireToken rejects requests without a valid bearer token and stores the
// token subject in the request context.
func (m *AuthMiddleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.ExtractTokenFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			unauthorized(w, "authorization header required")
			return
		}

		subject, err := m.authService.ValidateToken(token)
		if err != nil {
			unauthorized(w, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), SubjectContextKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSubjectFromContext returns the authenticated subject, if any.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectContextKey).(string)
	return subject, ok
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
