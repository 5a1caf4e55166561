package storage

import (
	"context"

	"github.com/iudanet/budgetkeeper/internal/models"
)

//go:generate moq -out token_mock.go . TokenStorage

// TokenStorage defines interface for the refresh token whitelist persistence.
// There is at most one record per user.
type TokenStorage interface {
	// CreateToken inserts a new record
	// Returns ErrAlreadyExists if the user already has one
	CreateToken(ctx context.Context, record *models.RefreshTokenRecord) error

	// GetToken retrieves the record of a user
	// Returns ErrNotFound if it doesn't exist
	GetToken(ctx context.Context, userUUID string) (*models.RefreshTokenRecord, error)

	// UpdateToken overwrites sequence number and expiry of an existing record
	// Returns ErrNotFound if it doesn't exist
	UpdateToken(ctx context.Context, record *models.RefreshTokenRecord) error

	// DeleteToken removes the record of a user
	// Returns ErrNotFound if it doesn't exist
	DeleteToken(ctx context.Context, userUUID string) error

	// ListTokens returns one page of records ordered by user UUID (page is 1-based)
	// and the total number of records
	ListTokens(ctx context.Context, page, perPage int) ([]*models.RefreshTokenRecord, int, error)
}
