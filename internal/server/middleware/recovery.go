package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/iudanet/budgetkeeper/internal/server/handlers"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

// Recovery перехватывает panic, логирует стек вызовов и возвращает
// 500 в общем формате ошибки без деталей
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.ErrorContext(r.Context(), "Panic recovered",
						slog.Any("error", err),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("remote_addr", r.RemoteAddr),
						slog.String("stack", string(debug.Stack())),
					)

					text := http.StatusText(http.StatusInternalServerError)
					_ = handlers.WriteJSON(w, http.StatusInternalServerError, api.ErrorResponse{
						Error:   text,
						Message: text,
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
