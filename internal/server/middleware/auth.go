package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/budgetkeeper/internal/server/handlers"
	"github.com/iudanet/budgetkeeper/internal/server/jwt"
	"github.com/iudanet/budgetkeeper/internal/server/session"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

// TokenVerifier проверяет access token
type TokenVerifier interface {
	VerifyAccessToken(token string) (*jwt.AccessClaims, error)
}

// RequireAuth пропускает только запросы с валидным access token.
// Ответ 401 содержит причину: "Token expired" или "Token not valid".
func RequireAuth(logger *slog.Logger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := handlers.BearerToken(r)
			if !ok {
				logger.DebugContext(r.Context(), "missing or malformed Authorization header",
					slog.String("path", r.URL.Path))
				unauthorized(w, session.TokenInvalid)
				return
			}

			claims, err := verifier.VerifyAccessToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "access token rejected", slog.Any("error", err))
				unauthorized(w, reason(err))
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithUserUUID(r.Context(), claims.UUID)))
		})
	}
}

// OptionalAuth кладет пользователя в контекст, если токен валиден,
// и пропускает анонимный запрос в остальных случаях
func OptionalAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := handlers.BearerToken(r); ok {
				if claims, err := verifier.VerifyAccessToken(token); err == nil {
					r = r.WithContext(handlers.WithUserUUID(r.Context(), claims.UUID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func reason(err error) string {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return session.TokenExpired
	}
	return session.TokenInvalid
}

func unauthorized(w http.ResponseWriter, reason string) {
	_ = handlers.WriteJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: reason})
}
