package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/salestrack-dev/salestrack/internal/usecase"
)

type ctxKey int

const callerKey ctxKey = iota

// TokenVerifier resolves a bearer token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type Authenticator struct {
	Tokens TokenVerifier
	Users  usecase.UserRepository
}

func NewAuthenticator(tokens TokenVerifier, users usecase.UserRepository) *Authenticator {
	return &Authenticator{Tokens: tokens, Users: users}
}

// RequireAuth verifies the Authorization header, loads the caller from the
// store and threads an explicit Caller value through the request context.
func (a *Authenticator) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeAuthError(w, http.StatusUnauthorized, "missing or malformed authorization header")
			return
		}

		userID, err := a.Tokens.Verify(token)
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		user, err := a.Users.FindByID(r.Context(), userID)
		if err != nil || !user.IsActive {
			writeAuthError(w, http.StatusUnauthorized, "user not found or deactivated")
			return
		}

		caller := usecase.Caller{ID: user.ID, Role: user.Role}
		ctx := context.WithValue(r.Context(), callerKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly guards routes reserved for the admin role. Must run after
// RequireAuth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := CallerFromContext(r.Context())
		if !ok {
			writeAuthError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		if !caller.IsAdmin() {
			writeAuthError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func CallerFromContext(ctx context.Context) (usecase.Caller, bool) {
	caller, ok := ctx.Value(callerKey).(usecase.Caller)
	return caller, ok
}

// WithCaller is a test hook for handlers that expect an authenticated context.
func WithCaller(ctx context.Context, caller usecase.Caller) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
