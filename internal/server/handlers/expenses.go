package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/budgetkeeper/internal/server/budget"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

// ExpenseHandler обрабатывает /api/v1/budgets/{budgetid}/categories/{categoryid}/expenses
type ExpenseHandler struct {
	budgets  BudgetService
	webhooks WebhookService
	now      func() time.Time
	responder
}

// NewExpenseHandler создает handler расходов
func NewExpenseHandler(budgets BudgetService, webhooks WebhookService, logger *slog.Logger, dev bool) *ExpenseHandler {
	return &ExpenseHandler{
		budgets:   budgets,
		webhooks:  webhooks,
		now:       time.Now,
		responder: responder{logger: logger, dev: dev},
	}
}

// List обрабатывает GET .../expenses. Итоги считаются по всей категории,
// а не только по странице.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	b, _, ok := loadBudget(&h.responder, h.budgets, w, r)
	if !ok {
		return
	}
	categoryIndex := pathIndex(r, "categoryid")

	p, err := parsePagination(r, 0)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	expenses, err := budget.Expenses(b, categoryIndex, p)
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	totalAmount, err := budget.TotalAmount(b, categoryIndex)
	if err != nil {
		h.sendError(w, r, err)
		return
	}
	totalCount, err := budget.TotalCount(b, categoryIndex)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var page *api.PageInfo
	if p != nil {
		page = api.NewPageInfo(p.Page, p.PerPage, totalCount)
	}
	h.sendPage(w, "Expenses retrieved successfully", api.ExpenseListResponse{
		Expenses:    expenses,
		TotalAmount: totalAmount.String(),
		TotalCount:  totalCount,
	}, page)
}

// Add обрабатывает POST .../expenses и после ответа вызывает webhook того, кто добавил расход
func (h *ExpenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	b, userUUID, ok := loadBudget(&h.responder, h.budgets, w, r)
	if !ok {
		return
	}
	categoryIndex := pathIndex(r, "categoryid")

	var req api.ExpenseRequest
	if err := h.decode(r, &req); err != nil {
		h.sendError(w, r, err)
		return
	}
	// расход всегда принадлежит тому, кто его добавил
	req.OwnerUUID = userUUID
	expense := toExpense(req, userUUID, h.now())

	updated, err := budget.AddExpense(b, categoryIndex, userUUID, expense)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	saved, ok := saveBudget(&h.responder, h.budgets, w, r, updated, userUUID)
	if !ok {
		return
	}

	h.sendData(w, http.StatusCreated, "Expense added successfully", saved)

	h.webhooks.TriggerIfApplicable(r.Context(), userUUID, expense, saved.ID, categoryIndex)
}

// Get обрабатывает GET .../expenses/{expenseid}
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, _, ok := loadBudget(&h.responder, h.budgets, w, r)
	if !ok {
		return
	}

	expense, err := budget.ExpenseByIndex(b, pathIndex(r, "categoryid"), pathIndex(r, "expenseid"))
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusOK, "Expense retrieved successfully", expense)
}

// Update обрабатывает PUT .../expenses/{expenseid}
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	b, userUUID, ok := loadBudget(&h.responder, h.budgets, w, r)
	if !ok {
		return
	}

	var req api.ExpenseRequest
	if err := h.decode(r, &req); err != nil {
		h.sendError(w, r, err)
		return
	}
	req.OwnerUUID = userUUID
	expense := toExpense(req, userUUID, h.now())

	updated, err := budget.UpdateExpense(b, pathIndex(r, "categoryid"), pathIndex(r, "expenseid"), expense, userUUID)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	if _, ok := saveBudget(&h.responder, h.budgets, w, r, updated, userUUID); !ok {
		return
	}

	h.sendData(w, http.StatusOK, "Expense updated successfully", expense)
}

// Delete обрабатывает DELETE .../expenses/{expenseid}
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	b, userUUID, ok := loadBudget(&h.responder, h.budgets, w, r)
	if !ok {
		return
	}

	updated, err := budget.DeleteExpense(b, pathIndex(r, "categoryid"), pathIndex(r, "expenseid"), userUUID)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	saved, ok := saveBudget(&h.responder, h.budgets, w, r, updated, userUUID)
	if !ok {
		return
	}

	h.sendData(w, http.StatusOK, "Expense deleted successfully", saved)
}

