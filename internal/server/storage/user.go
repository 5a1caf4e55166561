package storage

import (
	"context"

	"github.com/iudanet/budgetkeeper/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage and fills user.ID
	// Returns ErrAlreadyExists if the email is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by (normalized) email
	// Returns ErrNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByUUID retrieves user by UUID
	// Returns ErrNotFound if user doesn't exist
	GetUserByUUID(ctx context.Context, uuid string) (*models.User, error)

	// UpdateUser updates username, email and password hash
	// Returns ErrNotFound if user doesn't exist, ErrAlreadyExists on email clash
	UpdateUser(ctx context.Context, user *models.User) error

	// DeleteUser deletes user by UUID
	// Returns ErrNotFound if user doesn't exist
	DeleteUser(ctx context.Context, uuid string) error
}
