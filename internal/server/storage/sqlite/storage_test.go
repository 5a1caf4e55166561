package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/budgetkeeper/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	userUUID := uuid.New().String()
	user := &models.User{
		UUID:         userUUID,
		Username:     "testuser_" + userUUID[:8],
		Email:        userUUID[:8] + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	return userUUID
}

func newTestBudget(ownerUUID string, shared ...models.UserAccess) *models.Budget {
	access := append([]models.UserAccess{{UserUUID: ownerUUID, AccessLevel: models.AccessOwner}}, shared...)
	return &models.Budget{
		BudgetName:        "Household",
		BudgetDescription: "Monthly household spending",
		BudgetStartDate:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		BudgetIteration:   models.IterationMonthly,
		OwnerUUID:         ownerUUID,
		Categories: []models.Category{
			{
				ID:            uuid.NewString(),
				CategoryName:  "Food",
				CategoryLimit: 300,
				Expenses: []models.Expense{
					{ID: uuid.NewString(), OwnerUUID: ownerUUID, Date: time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC), Amount: 12.5, Note: "bread"},
				},
			},
		},
		UserAccess: access,
	}
}
