package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxExpenseNoteLen максимальная длина заметки к расходу
const MaxExpenseNoteLen = 128

// Expense is a single spending entry inside a category
type Expense struct {
	Date      time.Time `json:"date"`
	ID        string    `json:"id"`
	OwnerUUID string    `json:"ownerUUID"`
	Note      string    `json:"note,omitempty"`
	Amount    float64   `json:"amount"`
}

// NewExpense validates an expense. Checks run in order: owner, date, amount, note.
func NewExpense(ownerUUID string, date time.Time, amount float64, note string) (*Expense, error) {
	const origin = "Expense constructor"

	if ownerUUID == "" {
		return nil, invalid("Owner UUID is required.", origin)
	}
	if len(ownerUUID) != UUIDLength {
		return nil, invalid("Owner UUID must be 36 characters long.", origin)
	}
	if date.IsZero() {
		return nil, invalid("Date is required.", origin)
	}
	if amount == 0 {
		return nil, invalid("Amount is required.", origin)
	}
	if amount < 0 {
		return nil, invalid("Amount must be greater than 0.", origin)
	}
	if len(note) > MaxExpenseNoteLen {
		return nil, invalid("The note must be of maximum length 128 characters.", origin)
	}

	return &Expense{
		ID:        uuid.NewString(),
		OwnerUUID: ownerUUID,
		Date:      date,
		Amount:    amount,
		Note:      note,
	}, nil
}
