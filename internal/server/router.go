// Package server assembles the HTTP surface: routes, middleware chain and
// the http.Server lifecycle.
package server

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/budgetkeeper/internal/server/handlers"
	"github.com/iudanet/budgetkeeper/internal/server/middleware"
)

// APIPrefix базовый путь API
const APIPrefix = "/api/v1"

// Handlers набор обработчиков, которые регистрирует роутер
type Handlers struct {
	Health     *handlers.HealthHandler
	Users      *handlers.UserHandler
	Budgets    *handlers.BudgetHandler
	Categories *handlers.CategoryHandler
	Expenses   *handlers.ExpenseHandler
	Webhooks   *handlers.WebhookHandler
}

// RouterConfig зависимости middleware
type RouterConfig struct {
	Logger       *slog.Logger
	Verifier     middleware.TokenVerifier
	RateLimiter  *middleware.RateLimiter
	LoginLimiter *middleware.RateLimiter // nil - общий лимит
	Sweeper      *middleware.SessionSweeper
}

// NewRouter registers every route and wraps the mux with
// recovery -> logging -> rate limit -> session sweep.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(cfg.Logger, cfg.Verifier)
	optionalAuth := middleware.OptionalAuth(cfg.Verifier)

	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, requireAuth(fn))
	}

	mux.HandleFunc("GET "+APIPrefix+"/health", h.Health.Health)

	// users
	mux.HandleFunc("POST "+APIPrefix+"/users", h.Users.Register)
	mux.Handle("POST "+APIPrefix+"/users/login", optionalAuth(http.HandlerFunc(h.Users.Login)))
	// refresh token проверяет сам обработчик
	mux.HandleFunc("POST "+APIPrefix+"/users/refresh", h.Users.Refresh)
	protected("GET "+APIPrefix+"/users/logout", h.Users.Logout)
	protected("PUT "+APIPrefix+"/users", h.Users.Update)
	protected("DELETE "+APIPrefix+"/users", h.Users.Delete)

	// budgets
	const budget = APIPrefix + "/budgets/{budgetid}"
	protected("GET "+APIPrefix+"/budgets", h.Budgets.List)
	protected("POST "+APIPrefix+"/budgets", h.Budgets.Create)
	protected("GET "+budget, h.Budgets.Get)
	protected("PUT "+budget, h.Budgets.Update)
	protected("DELETE "+budget, h.Budgets.Delete)

	// categories
	const category = budget + "/categories/{categoryid}"
	protected("GET "+budget+"/categories", h.Categories.List)
	protected("POST "+budget+"/categories", h.Categories.Add)
	protected("GET "+category, h.Categories.Get)
	protected("PUT "+category, h.Categories.Overwrite)
	protected("DELETE "+category, h.Categories.Delete)

	// expenses
	const expense = category + "/expenses/{expenseid}"
	protected("GET "+category+"/expenses", h.Expenses.List)
	protected("POST "+category+"/expenses", h.Expenses.Add)
	protected("GET "+expense, h.Expenses.Get)
	protected("PUT "+expense, h.Expenses.Update)
	protected("DELETE "+expense, h.Expenses.Delete)

	// webhooks
	protected("POST "+APIPrefix+"/webhooks", h.Webhooks.Register)
	protected("DELETE "+APIPrefix+"/webhooks", h.Webhooks.Remove)

	var handler http.Handler = mux
	if cfg.Sweeper != nil {
		handler = cfg.Sweeper.Middleware(handler)
	}
	if cfg.RateLimiter != nil {
		var limits []middleware.PathRateLimit
		if cfg.LoginLimiter != nil {
			limits = append(limits, middleware.PathRateLimit{
				Limiter: cfg.LoginLimiter,
				Method:  http.MethodPost,
				Path:    APIPrefix + "/users/login",
			})
		}
		handler = middleware.RateLimitByPath(limits, cfg.RateLimiter, cfg.Logger)(handler)
	}
	handler = middleware.Logging(cfg.Logger, APIPrefix+"/health")(handler)
	handler = middleware.Recovery(cfg.Logger)(handler)

	return handler
}
