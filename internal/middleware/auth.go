package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/taemotherlode01/ministore-api/internal/obs"
	"github.com/taemotherlode01/ministore-api/internal/respond"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier validates bearer tokens. Session handling lives outside
// this service; the verifier is the only point it calls into.
type TokenVerifier interface {
	Verify(token string) error
}

// StaticToken accepts exactly one shared token. An empty StaticToken
// rejects everything.
type StaticToken string

func (s StaticToken) Verify(token string) error {
	if s == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

// RequireToken rejects requests without a valid token in the Authorization
// header ("Bearer <token>") or the token query parameter.
func RequireToken(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				token = r.URL.Query().Get("token")
			}
			token = strings.TrimPrefix(token, "Bearer ")

			if err := v.Verify(token); err != nil {
				obs.Logger.Warn("rejected unauthenticated request", "path", r.URL.Path, "request_id", RequestIDFromContext(r.Context()))
				respond.Message(w, http.StatusUnauthorized, "Authentication Required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
