package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

// BudgetHandler обрабатывает /api/v1/budgets
type BudgetHandler struct {
	budgets BudgetService
	now     func() time.Time
	responder
}

// NewBudgetHandler создает handler бюджетов
func NewBudgetHandler(budgets BudgetService, logger *slog.Logger, dev bool) *BudgetHandler {
	return &BudgetHandler{
		budgets:   budgets,
		now:       time.Now,
		responder: responder{logger: logger, dev: dev},
	}
}

// List обрабатывает GET /api/v1/budgets?page=&perPage=
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	p, err := parsePagination(r, 0)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	budgets, total, err := h.budgets.List(r.Context(), userUUID, p)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var page *api.PageInfo
	if p != nil {
		page = api.NewPageInfo(p.Page, p.PerPage, total)
	}
	h.sendPage(w, "Budgets retrieved successfully", budgets, page)
}

// Create обрабатывает POST /api/v1/budgets. Владельцем становится текущий пользователь.
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var req api.BudgetRequest
	if err := h.decode(r, &req); err != nil {
		h.sendError(w, r, err)
		return
	}

	draft := toBudget(req, userUUID, h.now())
	draft.OwnerUUID = userUUID

	budget, err := h.budgets.Create(r.Context(), draft)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusCreated, "Budget created successfully", budget)
}

// Get обрабатывает GET /api/v1/budgets/{budgetid}
func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	budget, err := h.budgets.GetByID(r.Context(), r.PathValue("budgetid"), userUUID)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusOK, "Budget retrieved successfully", budget)
}

// Update обрабатывает PUT /api/v1/budgets/{budgetid}
func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var req api.BudgetRequest
	if err := h.decode(r, &req); err != nil {
		h.sendError(w, r, err)
		return
	}

	budget, err := h.budgets.Update(r.Context(), toBudget(req, userUUID, h.now()), r.PathValue("budgetid"), userUUID)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusOK, "Budget updated successfully", budget)
}

// Delete обрабатывает DELETE /api/v1/budgets/{budgetid}
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	if err := h.budgets.Delete(r.Context(), r.PathValue("budgetid"), userUUID); err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusOK, "Budget deleted successfully", nil)
}

// toBudget переводит тело запроса в черновик. Nil срезы остаются nil,
// чтобы при обновлении отличать "не передано" от "пусто".
func toBudget(req api.BudgetRequest, actorUUID string, now time.Time) models.Budget {
	draft := models.Budget{
		BudgetName:        req.BudgetName,
		BudgetDescription: req.BudgetDescription,
		BudgetStartDate:   req.BudgetStartDate,
		BudgetIteration:   models.BudgetIteration(req.BudgetIteration),
		Version:           req.Version,
	}

	if req.Categories != nil {
		draft.Categories = make([]models.Category, 0, len(req.Categories))
		for _, c := range req.Categories {
			draft.Categories = append(draft.Categories, toCategory(c, actorUUID, now))
		}
	}

	if req.UserAccess != nil {
		draft.UserAccess = make([]models.UserAccess, 0, len(req.UserAccess))
		for _, ua := range req.UserAccess {
			draft.UserAccess = append(draft.UserAccess, models.UserAccess{
				UserUUID:    ua.UserUUID,
				AccessLevel: models.AccessLevel(ua.AccessLevel),
			})
		}
	}

	return draft
}

func toCategory(req api.CategoryRequest, actorUUID string, now time.Time) models.Category {
	c := models.Category{
		CategoryName:  req.CategoryName,
		CategoryLimit: req.CategoryLimit,
		Expenses:      make([]models.Expense, 0, len(req.Expenses)),
	}
	for _, e := range req.Expenses {
		c.Expenses = append(c.Expenses, toExpense(e, actorUUID, now))
	}
	return c
}

// toExpense подставляет текущее время и текущего пользователя, если они не заданы
func toExpense(req api.ExpenseRequest, actorUUID string, now time.Time) models.Expense {
	e := models.Expense{
		OwnerUUID: req.OwnerUUID,
		Date:      now,
		Amount:    req.Amount,
		Note:      req.Note,
	}
	if e.OwnerUUID == "" {
		e.OwnerUUID = actorUUID
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	return e
}
