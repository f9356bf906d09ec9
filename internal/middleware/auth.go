package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/drivenpass/drivenpass-go/internal/crypto"
	"github.com/drivenpass/drivenpass-go/internal/model"
)

type contextKey string

const userKey contextKey = "user"

// UserFinder resolves a token subject to a live account; a stale token
// naming a deleted user must not authenticate.
type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// Authenticate returns the session guard: it extracts the bearer token,
// verifies it, resolves the subject to a live user and attaches that
// user to the request context. Every failure mode — missing or
// malformed header, bad signature, elapsed expiry, vanished user —
// collapses into the same opaque 401 so callers cannot tell which
// check failed.
func Authenticate(tokens *crypto.TokenManager, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				unauthorized(w)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				unauthorized(w)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil || user == nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user attached by
// Authenticate.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
