package storage

import (
	"context"

	"github.com/iudanet/budgetkeeper/internal/models"
)

// BudgetStorage defines interface for budget aggregate persistence.
// The aggregate (categories, expenses, access list) is always read and written whole.
type BudgetStorage interface {
	// CreateBudget stores a new budget, assigns budget.ID and sets Version to 1
	CreateBudget(ctx context.Context, budget *models.Budget) error

	// GetBudget retrieves a budget by ID
	// Returns ErrInvalidID for malformed ids, ErrNotFound if it doesn't exist
	GetBudget(ctx context.Context, id string) (*models.Budget, error)

	// ListUserBudgets returns budgets the user owns or is listed in, newest first,
	// limited to the page, plus the total count
	ListUserBudgets(ctx context.Context, userUUID string, limit, offset int) ([]*models.Budget, int, error)

	// SaveBudget overwrites the budget if budget.Version still matches the stored version
	// and increments budget.Version.
	// Returns ErrNotFound if it doesn't exist, ErrVersionConflict on a stale version
	SaveBudget(ctx context.Context, budget *models.Budget) error

	// DeleteBudget deletes a budget by ID
	// Returns ErrNotFound if it doesn't exist
	DeleteBudget(ctx context.Context, id string) error
}
