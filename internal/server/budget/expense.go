package budget

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/access"
)

// AddExpense appends an expense to the category at categoryIndex
func AddExpense(b *models.Budget, categoryIndex int, actorUUID string, e models.Expense) (*models.Budget, error) {
	const origin = "ExpenseService.AddExpense"

	if err := access.CheckAccess(b, actorUUID, access.Write); err != nil {
		return nil, err
	}

	category, err := categoryAt(b, categoryIndex, origin)
	if err != nil {
		return nil, err
	}

	category.Expenses = append(category.Expenses, e)
	return b, nil
}

// UpdateExpense replaces an expense. Besides write access the actor must own
// the expense or the budget.
func UpdateExpense(b *models.Budget, categoryIndex, expenseIndex int, e models.Expense, actorUUID string) (*models.Budget, error) {
	const origin = "ExpenseService.UpdateExpense"

	if err := access.CheckAccess(b, actorUUID, access.Write); err != nil {
		return nil, err
	}

	category, err := categoryAt(b, categoryIndex, origin)
	if err != nil {
		return nil, err
	}
	if !inRange(expenseIndex, len(category.Expenses)) {
		return nil, expenseNotFound(expenseIndex, origin)
	}

	current := category.Expenses[expenseIndex]
	if current.OwnerUUID != actorUUID && b.OwnerUUID != actorUUID {
		return nil, apperr.New(apperr.Forbidden, "You do not have access to update the expense.", origin)
	}

	category.Expenses[expenseIndex] = e
	return b, nil
}

// DeleteExpense removes an expense. Later expenses shift down by one.
func DeleteExpense(b *models.Budget, categoryIndex, expenseIndex int, actorUUID string) (*models.Budget, error) {
	const origin = "ExpenseService.DeleteExpense"

	if err := access.CheckAccess(b, actorUUID, access.Write); err != nil {
		return nil, err
	}

	category, err := categoryAt(b, categoryIndex, origin)
	if err != nil {
		return nil, err
	}
	if !inRange(expenseIndex, len(category.Expenses)) {
		return nil, apperr.New(apperr.NotFound, "The expense you are trying to delete does not exists.", origin)
	}

	category.Expenses = append(category.Expenses[:expenseIndex], category.Expenses[expenseIndex+1:]...)
	return b, nil
}

// Expenses returns one page of expenses of a category
func Expenses(b *models.Budget, categoryIndex int, p *models.Pagination) ([]models.Expense, error) {
	category, err := categoryAt(b, categoryIndex, "ExpenseService.Expenses")
	if err != nil {
		return nil, err
	}
	return models.Paginate(category.Expenses, p), nil
}

// ExpenseByIndex returns a single expense
func ExpenseByIndex(b *models.Budget, categoryIndex, expenseIndex int) (*models.Expense, error) {
	const origin = "ExpenseService.ExpenseByIndex"

	category, err := categoryAt(b, categoryIndex, origin)
	if err != nil {
		return nil, err
	}
	if !inRange(expenseIndex, len(category.Expenses)) {
		return nil, expenseNotFound(expenseIndex, origin)
	}
	return &category.Expenses[expenseIndex], nil
}

// TotalAmount sums the expenses of a category without float rounding drift
func TotalAmount(b *models.Budget, categoryIndex int) (decimal.Decimal, error) {
	category, err := categoryAt(b, categoryIndex, "ExpenseService.TotalAmount")
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range category.Expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total, nil
}

// TotalCount returns the number of expenses in a category
func TotalCount(b *models.Budget, categoryIndex int) (int, error) {
	category, err := categoryAt(b, categoryIndex, "ExpenseService.TotalCount")
	if err != nil {
		return 0, err
	}
	return len(category.Expenses), nil
}

func categoryAt(b *models.Budget, index int, origin string) (*models.Category, error) {
	if !inRange(index, len(b.Categories)) {
		return nil, apperr.New(apperr.NotFound, "Category with index "+strconv.Itoa(index)+" does not exist.", origin)
	}
	return &b.Categories[index], nil
}

func expenseNotFound(index int, origin string) error {
	return apperr.New(apperr.NotFound, "Expense with index "+strconv.Itoa(index)+" does not exist.", origin)
}
