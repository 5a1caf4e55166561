package handlers

import (
	"context"

	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/session"
)

// UserService учетные записи пользователей
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	GetByUUID(ctx context.Context, userUUID string) (*models.User, error)
	Update(ctx context.Context, userUUID string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, userUUID string) error
}

//go:generate moq -out session_mock.go . SessionManager
//go:generate moq -out budget_mock.go . BudgetService

// SessionManager выдача и ротация токенов
type SessionManager interface {
	Login(ctx context.Context, email, password string) (*session.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*session.Tokens, error)
	Logout(ctx context.Context, userUUID string) error
}

// BudgetService хранилище бюджетов с проверкой доступа
type BudgetService interface {
	Create(ctx context.Context, draft models.Budget) (*models.Budget, error)
	List(ctx context.Context, userUUID string, p *models.Pagination) ([]*models.Budget, int, error)
	GetByID(ctx context.Context, id, requesterUUID string) (*models.Budget, error)
	Update(ctx context.Context, draft models.Budget, id, requesterUUID string) (*models.Budget, error)
	Delete(ctx context.Context, id, requesterUUID string) error
}

// WebhookService регистрация и вызов webhooks
type WebhookService interface {
	Register(ctx context.Context, hook models.ExpenseAddedWebhook, actingUUID string) (*models.ExpenseAddedWebhook, error)
	Remove(ctx context.Context, ownerUUID string) error
	TriggerIfApplicable(ctx context.Context, ownerUUID string, expense models.Expense, budgetID string, categoryIndex int)
}
