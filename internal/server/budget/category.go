package budget

import (
	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/access"
)

// AddCategory appends a category. Conflict if a category with exactly the
// same name already exists.
func AddCategory(b *models.Budget, actorUUID string, c models.Category) (*models.Budget, error) {
	const origin = "CategoryService.AddCategory"

	if err := access.CheckAccess(b, actorUUID, access.Write); err != nil {
		return nil, err
	}

	for _, existing := range b.Categories {
		if existing.CategoryName == c.CategoryName {
			return nil, apperr.New(apperr.Conflict, "The category "+c.CategoryName+" already exists.", origin)
		}
	}

	b.Categories = append(b.Categories, c)
	return b, nil
}

// OverwriteCategory replaces the category at index
func OverwriteCategory(b *models.Budget, actorUUID string, index int, c models.Category) (*models.Budget, error) {
	const origin = "CategoryService.OverwriteCategory"

	if err := access.CheckAccess(b, actorUUID, access.Write); err != nil {
		return nil, err
	}
	if !inRange(index, len(b.Categories)) {
		return nil, categoryNotFound(origin)
	}

	b.Categories[index] = c
	return b, nil
}

// DeleteCategory removes the category at index. Later categories shift down by one.
func DeleteCategory(b *models.Budget, actorUUID string, index int) (*models.Budget, error) {
	const origin = "CategoryService.DeleteCategory"

	if err := access.CheckAccess(b, actorUUID, access.Write); err != nil {
		return nil, err
	}
	if !inRange(index, len(b.Categories)) {
		return nil, categoryNotFound(origin)
	}

	b.Categories = append(b.Categories[:index], b.Categories[index+1:]...)
	return b, nil
}

// Categories returns one page of categories, all of them for a nil pagination.
// The budget is expected to be loaded through Service.GetByID, which already
// checked read access.
func Categories(b *models.Budget, p *models.Pagination) ([]models.Category, error) {
	if len(b.Categories) == 0 {
		return nil, apperr.New(apperr.NotFound, "Categories not found.", "CategoryService.Categories")
	}
	return models.Paginate(b.Categories, p), nil
}

// CategoryByIndex returns the category at index
func CategoryByIndex(b *models.Budget, index int) (*models.Category, error) {
	if !inRange(index, len(b.Categories)) {
		return nil, categoryNotFound("CategoryService.CategoryByIndex")
	}
	return &b.Categories[index], nil
}

func categoryNotFound(origin string) error {
	return apperr.New(apperr.NotFound, "Category not found.", origin)
}

func inRange(index, length int) bool {
	return index >= 0 && index < length
}
