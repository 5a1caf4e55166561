package storage

import (
	"context"

	"github.com/iudanet/budgetkeeper/internal/models"
)

// WebhookStorage defines interface for expense-added webhook persistence.
// Secrets are stored as given; encryption happens above this layer.
type WebhookStorage interface {
	// CreateWebhook stores a webhook
	// Returns ErrAlreadyExists if the owner already has one
	CreateWebhook(ctx context.Context, hook *models.ExpenseAddedWebhook) error

	// GetWebhookByOwner retrieves the webhook of an owner
	// Returns ErrNotFound if it doesn't exist
	GetWebhookByOwner(ctx context.Context, ownerUUID string) (*models.ExpenseAddedWebhook, error)

	// DeleteWebhook deletes the webhook of an owner
	// Returns ErrNotFound if it doesn't exist
	DeleteWebhook(ctx context.Context, ownerUUID string) error
}
