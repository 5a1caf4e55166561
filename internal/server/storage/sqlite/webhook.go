package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/storage"
)

// CreateWebhook stores an expense-added webhook
func (s *Storage) CreateWebhook(ctx context.Context, hook *models.ExpenseAddedWebhook) error {
	query := `
		INSERT INTO webhooks (owner_uuid, url, secret, budget_id, category_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		hook.OwnerUUID,
		hook.URL,
		hook.Secret,
		hook.BudgetIDToMonitor,
		hook.CategoryToMonitor,
		s.now(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert webhook: %w", err)
	}

	return nil
}

// GetWebhookByOwner retrieves the webhook of an owner
func (s *Storage) GetWebhookByOwner(ctx context.Context, ownerUUID string) (*models.ExpenseAddedWebhook, error) {
	query := `
		SELECT owner_uuid, url, secret, budget_id, category_index
		FROM webhooks
		WHERE owner_uuid = ?
	`

	hook := &models.ExpenseAddedWebhook{}

	err := s.db.QueryRowContext(ctx, query, ownerUUID).Scan(
		&hook.OwnerUUID,
		&hook.URL,
		&hook.Secret,
		&hook.BudgetIDToMonitor,
		&hook.CategoryToMonitor,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}

	return hook, nil
}

// DeleteWebhook deletes the webhook of an owner
func (s *Storage) DeleteWebhook(ctx context.Context, ownerUUID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM webhooks WHERE owner_uuid = ?`, ownerUUID)
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}
