// Package budget builds, reads and changes budget aggregates.
//
// Service persists whole aggregates through storage.BudgetStorage. The
// category and expense functions are pure: they take an aggregate loaded
// by Service.GetByID and the acting user, change the aggregate in memory
// and leave persistence to Service.Update.
package budget

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/access"
	"github.com/iudanet/budgetkeeper/internal/server/storage"
)

// Service is the budget aggregate store
type Service struct {
	store  storage.BudgetStorage
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a budget service
func NewService(store storage.BudgetStorage, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create validates the draft and stores it. The returned budget carries the new ID.
func (s *Service) Create(ctx context.Context, draft models.Budget) (*models.Budget, error) {
	const origin = "BudgetService.Create"

	draft.ID = ""
	budget, err := models.NewBudget(draft, s.now())
	if err != nil {
		return nil, err
	}

	categories, err := rebuildCategories(draft.Categories, false)
	if err != nil {
		return nil, err
	}
	budget.Categories = categories

	if err := s.store.CreateBudget(ctx, budget); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to create the budget.", err, origin)
	}

	s.logger.InfoContext(ctx, "budget created",
		slog.String("budget_id", budget.ID),
		slog.String("owner_uuid", budget.OwnerUUID))

	return budget, nil
}

// List returns the budgets the user owns or has been given access to and the
// total count. A nil pagination returns every budget.
func (s *Service) List(ctx context.Context, userUUID string, p *models.Pagination) ([]*models.Budget, int, error) {
	const origin = "BudgetService.List"

	limit, offset := -1, 0
	if p != nil {
		if !p.Valid() {
			return nil, 0, apperr.New(apperr.InvalidArgument, "Invalid pagination.", origin)
		}
		limit, offset = p.PerPage, p.Offset()
	}

	budgets, total, err := s.store.ListUserBudgets(ctx, userUUID, limit, offset)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Internal, "Failed to get all budgets.", err, origin)
	}

	if total == 0 {
		return []*models.Budget{}, 0, nil
	}
	if p != nil && offset >= total {
		return nil, 0, apperr.New(apperr.InvalidArgument, "Invalid pagination.", origin)
	}

	for _, b := range budgets {
		hydrate(b)
	}

	return budgets, total, nil
}

// GetByID loads a budget the requester may read. Expense lists come back
// in reverse of their stored order.
func (s *Service) GetByID(ctx context.Context, id, requesterUUID string) (*models.Budget, error) {
	const origin = "BudgetService.GetByID"

	budget, err := s.load(ctx, id, origin)
	if err != nil {
		return nil, err
	}

	if err := access.CheckAccess(budget, requesterUUID, access.Read); err != nil {
		return nil, err
	}

	hydrate(budget)
	return budget, nil
}

// Update merges draft into the stored budget. Empty scalar fields keep the
// stored value, non-nil Categories replace every category and expense,
// non-nil UserAccess replaces the access list. Owner and ID never change.
// A non-zero draft.Version must match the stored version.
func (s *Service) Update(ctx context.Context, draft models.Budget, id, requesterUUID string) (*models.Budget, error) {
	const origin = "BudgetService.Update"

	budget, err := s.load(ctx, id, origin)
	if err != nil {
		return nil, err
	}

	if err := access.CheckAccess(budget, requesterUUID, access.Write); err != nil {
		return nil, err
	}

	if draft.Version != 0 && draft.Version != budget.Version {
		return nil, conflict(origin, storage.ErrVersionConflict)
	}

	if draft.BudgetName != "" {
		budget.BudgetName = draft.BudgetName
	}
	if draft.BudgetDescription != "" {
		budget.BudgetDescription = draft.BudgetDescription
	}
	if !draft.BudgetStartDate.IsZero() {
		budget.BudgetStartDate = draft.BudgetStartDate
	}
	if draft.BudgetIteration != "" {
		budget.BudgetIteration = draft.BudgetIteration
	}

	// слитый агрегат обязан соблюдать те же ограничения, что и новый
	if err := models.ValidateName(budget.BudgetName); err != nil {
		return nil, err
	}
	if err := models.ValidateDescription(budget.BudgetDescription); err != nil {
		return nil, err
	}
	if err := models.ValidateIteration(budget.BudgetIteration); err != nil {
		return nil, err
	}

	if draft.Categories != nil {
		// расходы вставляются в начало списка, порядок переворачивается
		categories, err := rebuildCategories(draft.Categories, true)
		if err != nil {
			return nil, err
		}
		budget.Categories = categories
	}

	if draft.UserAccess != nil {
		userAccess := make([]models.UserAccess, 0, len(draft.UserAccess))
		for _, ua := range draft.UserAccess {
			checked, err := models.NewUserAccess(ua.UserUUID, ua.AccessLevel)
			if err != nil {
				return nil, err
			}
			userAccess = append(userAccess, *checked)
		}
		budget.UserAccess = userAccess
	}

	err = s.store.SaveBudget(ctx, budget)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrVersionConflict):
		return nil, conflict(origin, err)
	case errors.Is(err, storage.ErrNotFound):
		return nil, apperr.Wrap(apperr.NotFound, "Budget not found.", err, origin)
	default:
		return nil, apperr.Wrap(apperr.InvalidArgument, "Failed to update the budget.", err, origin)
	}

	hydrate(budget)
	return budget, nil
}

// Delete removes a budget. Only its owner may do that.
func (s *Service) Delete(ctx context.Context, id, requesterUUID string) error {
	const origin = "BudgetService.Delete"

	budget, err := s.load(ctx, id, origin)
	if err != nil {
		return err
	}

	if budget.OwnerUUID != requesterUUID {
		return apperr.New(apperr.Forbidden, "User does not have permission to delete the budget.", origin)
	}

	if err := s.store.DeleteBudget(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperr.Wrap(apperr.NotFound, "Budget not found.", err, origin)
		}
		return apperr.Wrap(apperr.Internal, "Failed to delete the budget.", err, origin)
	}

	s.logger.InfoContext(ctx, "budget deleted", slog.String("budget_id", id))
	return nil
}

func (s *Service) load(ctx context.Context, id, origin string) (*models.Budget, error) {
	budget, err := s.store.GetBudget(ctx, id)
	switch {
	case err == nil:
		return budget, nil
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrInvalidID):
		return nil, apperr.Wrap(apperr.NotFound, "Budget not found.", err, origin)
	default:
		return nil, apperr.Wrap(apperr.Internal, "Failed to get the budget.", err, origin)
	}
}

// hydrate приводит загруженный агрегат к виду, который отдается наружу
func hydrate(b *models.Budget) {
	if b.Categories == nil {
		b.Categories = []models.Category{}
	}
	if b.UserAccess == nil {
		b.UserAccess = []models.UserAccess{}
	}
	for i := range b.Categories {
		if b.Categories[i].Expenses == nil {
			b.Categories[i].Expenses = []models.Expense{}
		}
		slices.Reverse(b.Categories[i].Expenses)
	}
}

// rebuildCategories validates every category and expense. With reverse set
// expenses are stored in reverse of their incoming order.
// Stable ids present in the input are kept.
func rebuildCategories(in []models.Category, reverse bool) ([]models.Category, error) {
	out := make([]models.Category, 0, len(in))

	for _, c := range in {
		expenses := make([]models.Expense, 0, len(c.Expenses))
		for _, e := range c.Expenses {
			expense, err := models.NewExpense(e.OwnerUUID, e.Date, e.Amount, e.Note)
			if err != nil {
				return nil, err
			}
			if e.ID != "" {
				expense.ID = e.ID
			}
			expenses = append(expenses, *expense)
		}
		if reverse {
			slices.Reverse(expenses)
		}

		category, err := models.NewCategory(c.CategoryName, c.CategoryLimit, expenses)
		if err != nil {
			return nil, err
		}
		if c.ID != "" {
			category.ID = c.ID
		}
		out = append(out, *category)
	}

	return out, nil
}

func conflict(origin string, cause error) error {
	return apperr.Wrap(apperr.Conflict, "Budget was modified concurrently.", cause, origin)
}
