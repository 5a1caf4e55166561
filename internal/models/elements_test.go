package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	tests := []struct {
		name    string
		catName string
		wantMsg string
		limit   float64
	}{
		{name: "valid", catName: "Food", limit: 500},
		{name: "upper bound is inclusive", catName: "Food", limit: MaxCategoryLimit},
		{name: "empty name", catName: "", limit: 1, wantMsg: "Category name is required."},
		{name: "long name", catName: strings.Repeat("x", 129), limit: 1, wantMsg: "The category name must be of maximum length 128 characters."},
		{name: "zero limit", catName: "Food", limit: 0, wantMsg: "Category limit must be greater than 0."},
		{name: "negative limit", catName: "Food", limit: -5, wantMsg: "Category limit must be greater than 0."},
		{name: "limit too large", catName: "Food", limit: MaxCategoryLimit + 1, wantMsg: "Category limit must be less than 10000000 (ten million)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCategory(tt.catName, tt.limit, nil)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, c.ID)
			assert.Empty(t, c.Expenses)
			assert.NotNil(t, c.Expenses)
		})
	}
}

func TestNewExpense(t *testing.T) {
	now := time.Now()

	tests := []struct {
		date    time.Time
		name    string
		owner   string
		note    string
		wantMsg string
		amount  float64
	}{
		{name: "valid", owner: ownerID, date: now, amount: 12.5, note: "lunch"},
		{name: "valid without note", owner: ownerID, date: now, amount: 1},
		{name: "missing owner", owner: "", date: now, amount: 1, wantMsg: "Owner UUID is required."},
		{name: "short owner", owner: "123", date: now, amount: 1, wantMsg: "Owner UUID must be 36 characters long."},
		{name: "missing date", owner: ownerID, amount: 1, wantMsg: "Date is required."},
		{name: "zero amount", owner: ownerID, date: now, amount: 0, wantMsg: "Amount is required."},
		{name: "negative amount", owner: ownerID, date: now, amount: -3, wantMsg: "Amount must be greater than 0."},
		{name: "long note", owner: ownerID, date: now, amount: 1, note: strings.Repeat("n", 129), wantMsg: "The note must be of maximum length 128 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewExpense(tt.owner, tt.date, tt.amount, tt.note)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, e.ID)
			assert.Equal(t, tt.amount, e.Amount)
			assert.Equal(t, tt.note, e.Note)
		})
	}
}

func TestNewUserAccess(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		level   AccessLevel
		wantMsg string
	}{
		{name: "read", user: otherID, level: AccessRead},
		{name: "uppercase uuid", user: strings.ToUpper(otherID), level: AccessWrite},
		{name: "missing user", user: "", level: AccessRead, wantMsg: "User UUID is required."},
		{name: "not a uuid", user: strings.Repeat("z", 36), level: AccessRead, wantMsg: "User UUID must be a valid UUID."},
		{name: "missing level", user: otherID, level: "", wantMsg: "Access level is required."},
		{name: "unknown level", user: otherID, level: "admin", wantMsg: "Access level must be one of the following: owner, read, write."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ua, err := NewUserAccess(tt.user, tt.level)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.level, ua.AccessLevel)
		})
	}
}

func TestIsUUID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "lowercase", in: otherID, want: true},
		{name: "uppercase", in: strings.ToUpper(otherID), want: true},
		{name: "empty", in: "", want: false},
		{name: "no hyphens", in: strings.ReplaceAll(otherID, "-", ""), want: false},
		{name: "urn form", in: "urn:uuid:" + otherID, want: false},
		{name: "braces", in: "{" + otherID + "}", want: false},
		{name: "non hex", in: "g" + otherID[1:], want: false},
		{name: "hyphen moved", in: otherID[:7] + "-" + otherID[7:8] + otherID[9:], want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUUID(tt.in))
		})
	}
}

func TestExpenseAddedWebhook_Validate(t *testing.T) {
	valid := func() ExpenseAddedWebhook {
		return ExpenseAddedWebhook{
			OwnerUUID:         ownerID,
			URL:               "https://example.com/hook",
			Secret:            "supersecret",
			BudgetIDToMonitor: "budget-1",
			CategoryToMonitor: 0,
		}
	}

	tests := []struct {
		mutate  func(w *ExpenseAddedWebhook)
		name    string
		wantErr bool
	}{
		{name: "valid", mutate: func(w *ExpenseAddedWebhook) {}},
		{name: "ftp url", mutate: func(w *ExpenseAddedWebhook) { w.URL = "ftp://example.com" }, wantErr: true},
		{name: "url with space", mutate: func(w *ExpenseAddedWebhook) { w.URL = "http://exa mple.com" }, wantErr: true},
		{name: "short secret", mutate: func(w *ExpenseAddedWebhook) { w.Secret = "short" }, wantErr: true},
		{name: "missing budget", mutate: func(w *ExpenseAddedWebhook) { w.BudgetIDToMonitor = "" }, wantErr: true},
		{name: "negative category", mutate: func(w *ExpenseAddedWebhook) { w.CategoryToMonitor = -1 }, wantErr: true},
		{name: "bad owner", mutate: func(w *ExpenseAddedWebhook) { w.OwnerUUID = "x" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := valid()
			tt.mutate(&w)
			err := w.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Invalid webhook.", err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, items, Paginate(items, nil))
	assert.Equal(t, []int{1, 2}, Paginate(items, &Pagination{Page: 1, PerPage: 2}))
	assert.Equal(t, []int{5}, Paginate(items, &Pagination{Page: 3, PerPage: 2}))
	assert.Empty(t, Paginate(items, &Pagination{Page: 4, PerPage: 2}))
	assert.False(t, Pagination{Page: 0, PerPage: 2}.Valid())
}
