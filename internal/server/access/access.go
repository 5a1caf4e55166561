// Package access decides whether a user may read or change a budget.
package access

import (
	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/models"
)

// Level уровень доступа, который требует операция
type Level int

const (
	Read Level = iota
	Write
)

// String returns the level name
func (l Level) String() string {
	if l == Write {
		return string(models.AccessWrite)
	}
	return string(models.AccessRead)
}

// CheckAccess fails with Forbidden unless userUUID may act on the budget
// at the required level. The budget owner always passes.
func CheckAccess(budget *models.Budget, userUUID string, required Level) error {
	if budget.OwnerUUID == userUUID {
		return nil
	}

	for _, ua := range budget.UserAccess {
		if ua.UserUUID != userUUID {
			continue
		}

		switch {
		case ua.AccessLevel == models.AccessOwner:
			return nil
		case required == Write && ua.AccessLevel != models.AccessWrite:
			return denied()
		default:
			return nil
		}
	}

	return denied()
}

func denied() error {
	return apperr.New(apperr.Forbidden, "User does not have access to the budget.", "AccessControl.CheckAccess")
}
