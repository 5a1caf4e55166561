package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/budget"
	"github.com/iudanet/budgetkeeper/pkg/api"
)

// maxCategoriesPerPage верхняя граница perPage для категорий
const maxCategoriesPerPage = 10

// CategoryHandler обрабатывает /api/v1/budgets/{budgetid}/categories.
// Изменения применяются к загруженному бюджету и сохраняются целиком.
type CategoryHandler struct {
	budgets BudgetService
	now     func() time.Time
	responder
}

// NewCategoryHandler создает handler категорий
func NewCategoryHandler(budgets BudgetService, logger *slog.Logger, dev bool) *CategoryHandler {
	return &CategoryHandler{
		budgets:   budgets,
		now:       time.Now,
		responder: responder{logger: logger, dev: dev},
	}
}

// List обрабатывает GET .../categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	b, _, ok := h.load(w, r)
	if !ok {
		return
	}

	p, err := parsePagination(r, maxCategoriesPerPage)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	categories, err := budget.Categories(b, p)
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	var page *api.PageInfo
	if p != nil {
		page = api.NewPageInfo(p.Page, p.PerPage, len(b.Categories))
	}
	h.sendPage(w, "Categories retrieved successfully", categories, page)
}

// Add обрабатывает POST .../categories
func (h *CategoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	b, userUUID, ok := h.load(w, r)
	if !ok {
		return
	}

	var req api.CategoryRequest
	if err := h.decode(r, &req); err != nil {
		h.sendError(w, r, err)
		return
	}

	updated, err := budget.AddCategory(b, userUUID, toCategory(req, userUUID, h.now()))
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.save(w, r, updated, userUUID, http.StatusCreated, "Category added successfully")
}

// Get обрабатывает GET .../categories/{categoryid}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, _, ok := h.load(w, r)
	if !ok {
		return
	}

	category, err := budget.CategoryByIndex(b, pathIndex(r, "categoryid"))
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.sendData(w, http.StatusOK, "Category retrieved successfully", category)
}

// Overwrite обрабатывает PUT .../categories/{categoryid}
func (h *CategoryHandler) Overwrite(w http.ResponseWriter, r *http.Request) {
	b, userUUID, ok := h.load(w, r)
	if !ok {
		return
	}

	var req api.CategoryRequest
	if err := h.decode(r, &req); err != nil {
		h.sendError(w, r, err)
		return
	}

	updated, err := budget.OverwriteCategory(b, userUUID, pathIndex(r, "categoryid"), toCategory(req, userUUID, h.now()))
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.save(w, r, updated, userUUID, http.StatusOK, "Category updated successfully")
}

// Delete обрабатывает DELETE .../categories/{categoryid}.
// Индексы следующих категорий сдвигаются на единицу.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	b, userUUID, ok := h.load(w, r)
	if !ok {
		return
	}

	updated, err := budget.DeleteCategory(b, userUUID, pathIndex(r, "categoryid"))
	if err != nil {
		h.sendError(w, r, err)
		return
	}

	h.save(w, r, updated, userUUID, http.StatusOK, "Category deleted successfully")
}

// load читает бюджет из пути с проверкой доступа на чтение
func (h *CategoryHandler) load(w http.ResponseWriter, r *http.Request) (*models.Budget, string, bool) {
	return loadBudget(&h.responder, h.budgets, w, r)
}

func (h *CategoryHandler) save(w http.ResponseWriter, r *http.Request, b *models.Budget, userUUID string, status int, message string) {
	saved, ok := saveBudget(&h.responder, h.budgets, w, r, b, userUUID)
	if !ok {
		return
	}
	h.sendData(w, status, message, saved)
}

// loadBudget общая часть вложенных ресурсов: актор из контекста и бюджет из пути
func loadBudget(h *responder, budgets BudgetService, w http.ResponseWriter, r *http.Request) (*models.Budget, string, bool) {
	userUUID, err := h.actor(r)
	if err != nil {
		h.sendError(w, r, err)
		return nil, "", false
	}

	b, err := budgets.GetByID(r.Context(), r.PathValue("budgetid"), userUUID)
	if err != nil {
		h.sendError(w, r, err)
		return nil, "", false
	}

	return b, userUUID, true
}

// saveBudget сохраняет измененный агрегат. Версия загруженного бюджета
// защищает от параллельной записи.
func saveBudget(h *responder, budgets BudgetService, w http.ResponseWriter, r *http.Request, b *models.Budget, userUUID string) (*models.Budget, bool) {
	saved, err := budgets.Update(r.Context(), *b, b.ID, userUUID)
	if err != nil {
		h.sendError(w, r, err)
		return nil, false
	}
	return saved, true
}
