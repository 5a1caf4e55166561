package models

import (
	"strings"
	"time"

	"github.com/iudanet/budgetkeeper/internal/apperr"
)

// BudgetIteration is the period a budget repeats over
type BudgetIteration string

const (
	IterationWeekly  BudgetIteration = "weekly"
	IterationMonthly BudgetIteration = "monthly"
	IterationYearly  BudgetIteration = "yearly"
	IterationEvent   BudgetIteration = "event"
)

// BudgetIterations lists the allowed iterations in display order
var BudgetIterations = []BudgetIteration{IterationWeekly, IterationMonthly, IterationYearly, IterationEvent}

const (
	MaxBudgetNameLen        = 128
	MaxBudgetDescriptionLen = 256
)

// Budget is the aggregate root. Categories, their expenses and the access
// list are value-contained and persisted together with the budget.
type Budget struct {
	BudgetStartDate   time.Time       `json:"budgetStartDate"`
	ID                string          `json:"id"`
	OwnerUUID         string          `json:"ownerUUID"`
	BudgetName        string          `json:"budgetName"`
	BudgetDescription string          `json:"budgetDescription"`
	BudgetIteration   BudgetIteration `json:"budgetIteration"`
	Categories        []Category      `json:"categories"`
	UserAccess        []UserAccess    `json:"userAccess"`
	Version           int64           `json:"version"` // optimistic concurrency counter
}

// NewBudget builds a budget from untrusted input, validating every invariant.
// Checks run in order: name, description, start date, iteration, owner,
// user access. The first violation is returned.
// today is the reference point for the start date check.
func NewBudget(in Budget, today time.Time) (*Budget, error) {
	const origin = "Budget constructor"

	b := &Budget{ID: in.ID}

	if err := ValidateName(in.BudgetName); err != nil {
		return nil, err
	}
	b.BudgetName = in.BudgetName

	if err := ValidateDescription(in.BudgetDescription); err != nil {
		return nil, err
	}
	b.BudgetDescription = in.BudgetDescription

	if in.BudgetStartDate.IsZero() {
		return nil, invalid("Budget start date is required.", origin)
	}
	if in.BudgetStartDate.Before(StartOfDay(today)) {
		return nil, invalid("Budget start date must be today or in the future.", origin)
	}
	b.BudgetStartDate = in.BudgetStartDate

	if err := ValidateIteration(in.BudgetIteration); err != nil {
		return nil, err
	}
	b.BudgetIteration = in.BudgetIteration

	if in.OwnerUUID == "" {
		return nil, invalid("Owner UUID is required.", origin)
	}
	if len(in.OwnerUUID) != UUIDLength {
		return nil, invalid("Owner UUID must be 36 characters long.", origin)
	}
	b.OwnerUUID = in.OwnerUUID

	b.Categories = in.Categories
	if b.Categories == nil {
		b.Categories = []Category{}
	}

	access, err := normalizeUserAccess(in.UserAccess, b.OwnerUUID)
	if err != nil {
		return nil, err
	}
	b.UserAccess = access

	return b, nil
}

// ValidateName checks the budget name length
func ValidateName(name string) error {
	const origin = "Budget constructor"

	if name == "" {
		return invalid("Budget name is required.", origin)
	}
	if len(name) > MaxBudgetNameLen {
		return invalid("The budget name must be of maximum length 128 characters.", origin)
	}
	return nil
}

// ValidateDescription checks the budget description length
func ValidateDescription(description string) error {
	const origin = "Budget constructor"

	if description == "" {
		return invalid("Budget description is required.", origin)
	}
	if len(description) > MaxBudgetDescriptionLen {
		return invalid("The budget description must be of maximum length 256 characters.", origin)
	}
	return nil
}

// ValidateIteration checks that iteration is one of BudgetIterations
func ValidateIteration(iteration BudgetIteration) error {
	const origin = "Budget constructor"

	if iteration == "" {
		return invalid("Budget iteration is required.", origin)
	}
	for _, allowed := range BudgetIterations {
		if iteration == allowed {
			return nil
		}
	}

	names := make([]string, len(BudgetIterations))
	for i, it := range BudgetIterations {
		names[i] = string(it)
	}
	msg := "Budget iteration must be " + strings.Join(names[:len(names)-1], ", ") +
		" or " + names[len(names)-1] + "."
	return invalid(msg, origin)
}

// normalizeUserAccess applies the owner default and checks the access list
func normalizeUserAccess(in []UserAccess, ownerUUID string) ([]UserAccess, error) {
	const origin = "Budget constructor"

	access := make([]UserAccess, 0, len(in)+1)
	for _, ua := range in {
		checked, err := NewUserAccess(ua.UserUUID, ua.AccessLevel)
		if err != nil {
			return nil, err
		}
		access = append(access, *checked)
	}

	if len(access) == 0 {
		access = append(access, UserAccess{UserUUID: ownerUUID, AccessLevel: AccessOwner})
	}

	var owners []UserAccess
	for _, ua := range access {
		if ua.AccessLevel == AccessOwner {
			owners = append(owners, ua)
		}
	}
	if len(owners) > 1 {
		return nil, invalid("There can only be one owner.", origin)
	}
	if len(owners) == 0 || owners[0].UserUUID != ownerUUID {
		return nil, invalid("Conflict between owner UUID and user access owner UUID.", origin)
	}

	seen := make(map[string]struct{}, len(access))
	for _, ua := range access {
		if _, dup := seen[ua.UserUUID]; dup {
			return nil, invalid("User UUIDs must be unique.", origin)
		}
		seen[ua.UserUUID] = struct{}{}
	}

	return access, nil
}

// StartOfDay returns midnight of t in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func invalid(message, origin string) error {
	return apperr.New(apperr.InvalidArgument, message, origin)
}
