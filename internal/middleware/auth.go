package middleware

import (
	"context"
	"net/http"
	"strings"
)

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// SessionValidator resolves a bearer token to a user ID. It is the only
// dependency of the gate; *session.Manager satisfies it.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (string, error)
}

// AuthMiddleware is the single choke point for protected operations.
// Every handler behind it sees a resolved user ID in the request
// context or is never invoked.
type AuthMiddleware struct {
	Sessions SessionValidator
}

func NewAuthMiddleware(sessions SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{Sessions: sessions}
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
// A missing header or any other scheme yields "".
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}

	return token
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Extract bearer token; reject before any store lookup
		token := BearerToken(r)
		if token == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 2. Resolve to an identity (expired sessions are deleted here)
		userID, err := a.Sessions.Validate(r.Context(), token)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// 3. Attach user_id to context
		ctx := context.WithValue(r.Context(), userIDKey, userID)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
