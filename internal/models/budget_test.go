package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/budgetkeeper/internal/apperr"
)

const (
	ownerID = "3f2b8c1e-9d4a-4e6b-8a7c-1b2c3d4e5f60"
	otherID = "7a1c2e3f-4b5d-4c6e-9f8a-0b1c2d3e4f50"
)

func validDraft(today time.Time) Budget {
	return Budget{
		BudgetName:        "Groceries",
		BudgetDescription: "Weekly groceries",
		BudgetStartDate:   today,
		BudgetIteration:   IterationWeekly,
		OwnerUUID:         ownerID,
	}
}

func TestNewBudget(t *testing.T) {
	today := time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		mutate  func(b *Budget)
		name    string
		wantMsg string
	}{
		{
			name:   "valid budget",
			mutate: func(b *Budget) {},
		},
		{
			name:    "empty name",
			mutate:  func(b *Budget) { b.BudgetName = "" },
			wantMsg: "Budget name is required.",
		},
		{
			name:    "name too long",
			mutate:  func(b *Budget) { b.BudgetName = strings.Repeat("a", 129) },
			wantMsg: "The budget name must be of maximum length 128 characters.",
		},
		{
			name:    "empty description",
			mutate:  func(b *Budget) { b.BudgetDescription = "" },
			wantMsg: "Budget description is required.",
		},
		{
			name:    "description too long",
			mutate:  func(b *Budget) { b.BudgetDescription = strings.Repeat("d", 257) },
			wantMsg: "The budget description must be of maximum length 256 characters.",
		},
		{
			name:    "missing start date",
			mutate:  func(b *Budget) { b.BudgetStartDate = time.Time{} },
			wantMsg: "Budget start date is required.",
		},
		{
			name:    "start date in the past",
			mutate:  func(b *Budget) { b.BudgetStartDate = today.AddDate(0, 0, -1) },
			wantMsg: "Budget start date must be today or in the future.",
		},
		{
			name:   "start date earlier today is accepted",
			mutate: func(b *Budget) { b.BudgetStartDate = StartOfDay(today) },
		},
		{
			name:    "missing iteration",
			mutate:  func(b *Budget) { b.BudgetIteration = "" },
			wantMsg: "Budget iteration is required.",
		},
		{
			name:    "unknown iteration",
			mutate:  func(b *Budget) { b.BudgetIteration = "daily" },
			wantMsg: "Budget iteration must be weekly, monthly, yearly or event.",
		},
		{
			name:    "missing owner",
			mutate:  func(b *Budget) { b.OwnerUUID = "" },
			wantMsg: "Owner UUID is required.",
		},
		{
			name:    "short owner",
			mutate:  func(b *Budget) { b.OwnerUUID = "abc" },
			wantMsg: "Owner UUID must be 36 characters long.",
		},
		{
			name: "two owners",
			mutate: func(b *Budget) {
				b.UserAccess = []UserAccess{
					{UserUUID: ownerID, AccessLevel: AccessOwner},
					{UserUUID: otherID, AccessLevel: AccessOwner},
				}
			},
			wantMsg: "There can only be one owner.",
		},
		{
			name: "owner entry differs from owner uuid",
			mutate: func(b *Budget) {
				b.UserAccess = []UserAccess{{UserUUID: otherID, AccessLevel: AccessOwner}}
			},
			wantMsg: "Conflict between owner UUID and user access owner UUID.",
		},
		{
			name: "no owner entry",
			mutate: func(b *Budget) {
				b.UserAccess = []UserAccess{{UserUUID: otherID, AccessLevel: AccessRead}}
			},
			wantMsg: "Conflict between owner UUID and user access owner UUID.",
		},
		{
			name: "duplicate user",
			mutate: func(b *Budget) {
				b.UserAccess = []UserAccess{
					{UserUUID: ownerID, AccessLevel: AccessOwner},
					{UserUUID: ownerID, AccessLevel: AccessRead},
				}
			},
			wantMsg: "User UUIDs must be unique.",
		},
		{
			name: "bad access level",
			mutate: func(b *Budget) {
				b.UserAccess = []UserAccess{{UserUUID: ownerID, AccessLevel: "admin"}}
			},
			wantMsg: "Access level must be one of the following: owner, read, write.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft(today)
			tt.mutate(&draft)

			b, err := NewBudget(draft, today)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Nil(t, b)
				assert.Equal(t, tt.wantMsg, err.Error())
				assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, draft.BudgetName, b.BudgetName)
		})
	}
}

func TestNewBudget_ValidationOrder(t *testing.T) {
	today := time.Now()

	// все поля невалидны - должна вернуться первая ошибка (имя)
	_, err := NewBudget(Budget{OwnerUUID: "x"}, today)
	require.Error(t, err)
	assert.Equal(t, "Budget name is required.", err.Error())

	// имя валидно, описание нет, итерация тоже нет
	_, err = NewBudget(Budget{BudgetName: "n", BudgetStartDate: today}, today)
	require.Error(t, err)
	assert.Equal(t, "Budget description is required.", err.Error())
}

func TestValidateNameAndDescription(t *testing.T) {
	assert.NoError(t, ValidateName(strings.Repeat("n", MaxBudgetNameLen)))
	assert.NoError(t, ValidateDescription(strings.Repeat("d", MaxBudgetDescriptionLen)))

	err := ValidateName(strings.Repeat("n", MaxBudgetNameLen+1))
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))
	assert.Equal(t, "The budget name must be of maximum length 128 characters.", err.Error())

	err = ValidateDescription("")
	assert.True(t, apperr.IsKind(err, apperr.InvalidArgument))
	assert.Equal(t, "Budget description is required.", err.Error())
}

func TestNewBudget_DefaultsOwnerAccess(t *testing.T) {
	today := time.Now()

	b, err := NewBudget(validDraft(today), today)
	require.NoError(t, err)

	require.Len(t, b.UserAccess, 1)
	assert.Equal(t, UserAccess{UserUUID: ownerID, AccessLevel: AccessOwner}, b.UserAccess[0])
	assert.NotNil(t, b.Categories)
}

func TestNewBudget_KeepsSharedAccess(t *testing.T) {
	today := time.Now()
	draft := validDraft(today)
	draft.UserAccess = []UserAccess{
		{UserUUID: ownerID, AccessLevel: AccessOwner},
		{UserUUID: otherID, AccessLevel: AccessWrite},
	}

	b, err := NewBudget(draft, today)
	require.NoError(t, err)
	assert.Equal(t, draft.UserAccess, b.UserAccess)
}
