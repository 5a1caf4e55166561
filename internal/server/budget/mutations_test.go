package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/models"
)

func loadedBudget() *models.Budget {
	b := draftBudget()
	b.ID = "77777777-7777-4777-8777-777777777777"
	b.Categories = []models.Category{
		{CategoryName: "Food", CategoryLimit: 300, Expenses: []models.Expense{
			expense(ownerID, 10, "owner lunch"),
			expense(writerID, 20, "writer dinner"),
		}},
		{CategoryName: "Rent", CategoryLimit: 1000, Expenses: []models.Expense{
			expense(ownerID, 900, "october"),
		}},
		{CategoryName: "Fun", CategoryLimit: 50, Expenses: []models.Expense{}},
	}
	return &b
}

func TestAddCategory(t *testing.T) {
	b := loadedBudget()

	_, err := AddCategory(b, readerID, models.Category{CategoryName: "Travel", CategoryLimit: 10})
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))

	_, err = AddCategory(b, writerID, models.Category{CategoryName: "Food", CategoryLimit: 10})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
	assert.Equal(t, "The category Food already exists.", err.Error())

	// сравнение имен регистрозависимое
	b, err = AddCategory(b, writerID, models.Category{CategoryName: "food", CategoryLimit: 10})
	require.NoError(t, err)
	assert.Len(t, b.Categories, 4)
	assert.Equal(t, "food", b.Categories[3].CategoryName)
}

func TestOverwriteCategory(t *testing.T) {
	b := loadedBudget()

	b, err := OverwriteCategory(b, writerID, 1, models.Category{CategoryName: "Mortgage", CategoryLimit: 2000})
	require.NoError(t, err)
	assert.Equal(t, "Mortgage", b.Categories[1].CategoryName)

	for _, index := range []int{-1, 3} {
		_, err = OverwriteCategory(b, writerID, index, models.Category{CategoryName: "X", CategoryLimit: 1})
		assert.True(t, apperr.IsKind(err, apperr.NotFound))
		assert.Equal(t, "Category not found.", err.Error())
	}
}

func TestDeleteCategory_ShiftsIndexes(t *testing.T) {
	b := loadedBudget()

	before, err := ExpenseByIndex(b, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "october", before.Note)

	b, err = DeleteCategory(b, ownerID, 0)
	require.NoError(t, err)
	require.Len(t, b.Categories, 2)

	// индекс 1 теперь указывает на бывшую категорию 2
	shifted, err := CategoryByIndex(b, 1)
	require.NoError(t, err)
	assert.Equal(t, "Fun", shifted.CategoryName)

	moved, err := ExpenseByIndex(b, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "october", moved.Note)

	_, err = ExpenseByIndex(b, 1, 0)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.Equal(t, "Expense with index 0 does not exist.", err.Error())

	_, err = DeleteCategory(b, ownerID, 2)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))

	_, err = DeleteCategory(b, readerID, 0)
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))
}

func TestCategories(t *testing.T) {
	b := loadedBudget()

	all, err := Categories(b, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := Categories(b, &models.Pagination{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Fun", page[0].CategoryName)

	_, err = Categories(&models.Budget{}, nil)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.Equal(t, "Categories not found.", err.Error())

	_, err = CategoryByIndex(b, 3)
	assert.Equal(t, "Category not found.", err.Error())
}

func TestAddExpense(t *testing.T) {
	b := loadedBudget()

	b, err := AddExpense(b, 2, writerID, expense(writerID, 5, "cinema"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cinema"}, notes(b.Categories[2].Expenses))

	_, err = AddExpense(b, 3, writerID, expense(writerID, 5, ""))
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.Equal(t, "Category with index 3 does not exist.", err.Error())

	_, err = AddExpense(b, 0, readerID, expense(readerID, 5, ""))
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))
}

func TestUpdateExpense(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		expense int
		kind    apperr.Kind
		ok      bool
	}{
		{name: "writer edits own expense", actor: writerID, expense: 1, ok: true},
		{name: "writer edits owner's expense", actor: writerID, expense: 0, kind: apperr.Forbidden},
		{name: "owner edits writer's expense", actor: ownerID, expense: 1, ok: true},
		{name: "reader", actor: readerID, expense: 0, kind: apperr.Forbidden},
		{name: "out of range", actor: ownerID, expense: 2, kind: apperr.NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := loadedBudget()
			replacement := expense(tt.actor, 99, "edited")

			b, err := UpdateExpense(b, 0, tt.expense, replacement, tt.actor)
			if !tt.ok {
				assert.True(t, apperr.IsKind(err, tt.kind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "edited", b.Categories[0].Expenses[tt.expense].Note)
		})
	}

	_, err := UpdateExpense(loadedBudget(), 0, 0, expense(writerID, 1, ""), writerID)
	assert.Equal(t, "You do not have access to update the expense.", err.Error())
}

func TestDeleteExpense(t *testing.T) {
	b := loadedBudget()

	b, err := DeleteExpense(b, 0, 0, writerID)
	require.NoError(t, err)
	assert.Equal(t, []string{"writer dinner"}, notes(b.Categories[0].Expenses))

	_, err = DeleteExpense(b, 0, 1, writerID)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.Equal(t, "The expense you are trying to delete does not exists.", err.Error())

	_, err = DeleteExpense(b, 5, 0, writerID)
	assert.Equal(t, "Category with index 5 does not exist.", err.Error())
}

func TestExpenses(t *testing.T) {
	b := loadedBudget()

	all, err := Expenses(b, 0, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	page, err := Expenses(b, 0, &models.Pagination{Page: 2, PerPage: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"writer dinner"}, notes(page))

	empty, err := Expenses(b, 2, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Expenses(b, -1, nil)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestTotals(t *testing.T) {
	b := loadedBudget()
	b.Categories[2].Expenses = []models.Expense{
		expense(ownerID, 0.1, ""),
		expense(ownerID, 0.2, ""),
	}

	total, err := TotalAmount(b, 2)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("0.3")), "got %s", total)

	total, err = TotalAmount(b, 0)
	require.NoError(t, err)
	assert.Equal(t, "30", total.String())

	count, err := TotalCount(b, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = TotalAmount(b, 9)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	_, err = TotalCount(b, 9)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}
