// Package webhook registers "expense added" webhooks and delivers them.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/crypto"
	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/storage"
)

// DefaultTimeout ограничение на одну доставку
const DefaultTimeout = 5 * time.Second

// Payload тело запроса, которое получает webhook
type Payload struct {
	Secret  string         `json:"secret"`
	Expense models.Expense `json:"expense"`
}

// Service stores webhooks with encrypted secrets and fires them
type Service struct {
	store   storage.WebhookStorage
	box     *crypto.SecretBox
	client  *http.Client
	logger  *slog.Logger
	wg      sync.WaitGroup
	timeout time.Duration
}

// NewService creates a webhook service. box encrypts secrets at rest.
func NewService(store storage.WebhookStorage, box *crypto.SecretBox, client *http.Client, timeout time.Duration, logger *slog.Logger) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Service{
		store:   store,
		box:     box,
		client:  client,
		logger:  logger,
		timeout: timeout,
	}
}

// Register stores the webhook of the acting user. Each user may have one.
func (s *Service) Register(ctx context.Context, hook models.ExpenseAddedWebhook, actingUUID string) (*models.ExpenseAddedWebhook, error) {
	const origin = "WebhookService.Register"

	if err := hook.Validate(); err != nil {
		return nil, err
	}

	_, err := s.store.GetWebhookByOwner(ctx, hook.OwnerUUID)
	switch {
	case err == nil:
		return nil, exists(origin, nil)
	case !errors.Is(err, storage.ErrNotFound):
		return nil, apperr.Wrap(apperr.Internal, "Failed to register webhook.", err, origin)
	}

	if hook.OwnerUUID != actingUUID {
		return nil, apperr.New(apperr.Unauthorized, "Invalid webhook.", origin)
	}

	sealed, err := s.box.Seal(hook.Secret)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to register webhook.", err, origin)
	}

	stored := hook
	stored.Secret = sealed
	if err := s.store.CreateWebhook(ctx, &stored); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, exists(origin, err)
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to register webhook.", err, origin)
	}

	s.logger.InfoContext(ctx, "webhook registered",
		slog.String("owner_uuid", hook.OwnerUUID),
		slog.String("budget_id", hook.BudgetIDToMonitor),
		slog.Int("category", hook.CategoryToMonitor))

	return &hook, nil
}

// Remove deletes the webhook of the user
func (s *Service) Remove(ctx context.Context, ownerUUID string) error {
	const origin = "WebhookService.Remove"

	err := s.store.DeleteWebhook(ctx, ownerUUID)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.Wrap(apperr.NotFound, "Webhook does not exist.", err, origin)
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Failed to remove webhook.", err, origin)
	}

	s.logger.InfoContext(ctx, "webhook removed", slog.String("owner_uuid", ownerUUID))
	return nil
}

// TriggerIfApplicable fires the webhook registered by ownerUUID, the user who
// added the expense, in the background when it monitors the given budget
// category. Delivery is attempted once and its errors are only logged.
func (s *Service) TriggerIfApplicable(ctx context.Context, ownerUUID string, expense models.Expense, budgetID string, categoryIndex int) {
	// запрос клиента может уже завершиться, доставка живет дольше
	ctx = context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		if err := s.deliver(ctx, ownerUUID, expense, budgetID, categoryIndex); err != nil {
			s.logger.WarnContext(ctx, "webhook delivery failed",
				slog.String("owner_uuid", ownerUUID),
				slog.Any("error", err))
		}
	}()
}

// Wait blocks until background deliveries finish
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) deliver(ctx context.Context, ownerUUID string, expense models.Expense, budgetID string, categoryIndex int) error {
	hook, err := s.store.GetWebhookByOwner(ctx, ownerUUID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load webhook: %w", err)
	}

	if !hook.Monitors(budgetID, categoryIndex) {
		return nil
	}

	secret, err := s.box.Open(hook.Secret)
	if err != nil {
		return fmt.Errorf("failed to open webhook secret: %w", err)
	}

	body, err := json.Marshal(Payload{Secret: secret, Expense: expense})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hook.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}

	s.logger.DebugContext(ctx, "webhook delivered", slog.String("owner_uuid", ownerUUID))
	return nil
}

func exists(origin string, cause error) error {
	return apperr.Wrap(apperr.Conflict, "Webhook already exists.", cause, origin)
}
