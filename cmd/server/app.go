package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/budgetkeeper/internal/config"
	"github.com/iudanet/budgetkeeper/internal/crypto"
	"github.com/iudanet/budgetkeeper/internal/server"
	"github.com/iudanet/budgetkeeper/internal/server/budget"
	"github.com/iudanet/budgetkeeper/internal/server/handlers"
	"github.com/iudanet/budgetkeeper/internal/server/jwt"
	"github.com/iudanet/budgetkeeper/internal/server/middleware"
	"github.com/iudanet/budgetkeeper/internal/server/session"
	"github.com/iudanet/budgetkeeper/internal/server/storage"
	"github.com/iudanet/budgetkeeper/internal/server/storage/boltdb"
	"github.com/iudanet/budgetkeeper/internal/server/storage/sqlite"
	"github.com/iudanet/budgetkeeper/internal/server/users"
	"github.com/iudanet/budgetkeeper/internal/server/webhook"
	"github.com/iudanet/budgetkeeper/internal/server/whitelist"
)

// app собранные зависимости сервера
type app struct {
	handler  http.Handler
	webhooks *webhook.Service
	sweeper  *middleware.SessionSweeper
	limiters []*middleware.RateLimiter
	closers  []func() error
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *app, err error) {
	a := &app{}
	defer func() {
		// закрываем то, что успели открыть
		if err != nil {
			_ = a.Close()
		}
	}()

	store, err := sqlite.New(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	a.closers = append(a.closers, store.Close)

	var tokenStore storage.TokenStorage = store
	if cfg.Whitelist.Backend == config.BackendBolt {
		bolt, err := boltdb.New(ctx, cfg.Whitelist.BoltPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open whitelist storage: %w", err)
		}
		a.closers = append(a.closers, bolt.Close)
		tokenStore = bolt
	}

	secret := cfg.JWT.Secret
	if secret == "" {
		// только в development, Validate не пропускает пустой секрет в production
		secret, err = randomSecret()
		if err != nil {
			return nil, err
		}
		logger.WarnContext(ctx, "jwt.secret is empty, using a random one: tokens will not survive a restart")
	}
	encryptionKey := cfg.Webhook.EncryptionKey
	if encryptionKey == "" {
		encryptionKey = secret
	}

	box, err := crypto.NewSecretBoxFromPassphrase(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to init webhook encryption: %w", err)
	}

	tokens := jwt.NewService(jwt.Config{
		Secret:          []byte(secret),
		AccessTokenTTL:  cfg.JWT.AccessTTL(),
		RefreshTokenTTL: cfg.JWT.RefreshTTL(),
	})

	userService := users.NewService(store, logger)
	sessions := session.NewManager(
		userService,
		whitelist.New(tokenStore, cfg.JWT.RefreshTTL(), cfg.Whitelist.PageSize, logger),
		tokens,
		logger,
	)
	budgets := budget.NewService(store, logger)
	a.webhooks = webhook.NewService(store, box, &http.Client{Timeout: cfg.Webhook.Timeout}, cfg.Webhook.Timeout, logger)

	a.sweeper = middleware.NewSessionSweeper(sessions, cfg.Session.CleanupInterval, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
	a.limiters = append(a.limiters, limiter)
	var loginLimiter *middleware.RateLimiter
	if cfg.RateLimit.LoginRequests > 0 && cfg.RateLimit.LoginWindow > 0 {
		loginLimiter = middleware.NewRateLimiter(cfg.RateLimit.LoginRequests, cfg.RateLimit.LoginWindow, logger)
		a.limiters = append(a.limiters, loginLimiter)
	}

	dev := cfg.IsDevelopment()
	a.handler = server.NewRouter(server.Handlers{
		Health:     handlers.NewHealthHandler(store, Version, logger),
		Users:      handlers.NewUserHandler(userService, sessions, logger, dev),
		Budgets:    handlers.NewBudgetHandler(budgets, logger, dev),
		Categories: handlers.NewCategoryHandler(budgets, logger, dev),
		Expenses:   handlers.NewExpenseHandler(budgets, a.webhooks, logger, dev),
		Webhooks:   handlers.NewWebhookHandler(a.webhooks, logger, dev),
	}, server.RouterConfig{
		Logger:       logger,
		Verifier:     sessions,
		RateLimiter:  limiter,
		LoginLimiter: loginLimiter,
		Sweeper:      a.sweeper,
	})

	return a, nil
}

// Close ждет фоновые задачи и закрывает хранилища
func (a *app) Close() error {
	if a.webhooks != nil {
		a.webhooks.Wait()
	}
	if a.sweeper != nil {
		a.sweeper.Wait()
	}
	for _, l := range a.limiters {
		l.Stop()
	}

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
