package models

import (
	"errors"
	"regexp"

	"github.com/iudanet/budgetkeeper/internal/apperr"
)

var webhookURLPattern = regexp.MustCompile(`^(http|https)://[^ "]+$`)

const (
	MinWebhookSecretLen = 8
	MaxWebhookSecretLen = 256
)

// ExpenseAddedWebhook is a callback fired when an expense is added to the
// monitored budget category. One per owner.
type ExpenseAddedWebhook struct {
	OwnerUUID         string `json:"ownerUUID"`
	URL               string `json:"url"`
	Secret            string `json:"secret"`
	BudgetIDToMonitor string `json:"budgetIDToMonitor"`
	CategoryToMonitor int    `json:"categoryToMonitor"`
}

// Validate checks every field. The returned error is always
// "Invalid webhook." with the failing rule as its cause.
func (w *ExpenseAddedWebhook) Validate() error {
	var cause error

	switch {
	case len(w.OwnerUUID) != UUIDLength:
		cause = errors.New("ownerUUID must be 36 characters long")
	case !webhookURLPattern.MatchString(w.URL):
		cause = errors.New("url must be a valid URL")
	case len(w.Secret) < MinWebhookSecretLen || len(w.Secret) > MaxWebhookSecretLen:
		cause = errors.New("secret must be between 8 and 256 characters long")
	case w.BudgetIDToMonitor == "":
		cause = errors.New("budgetIDToMonitor is required")
	case w.CategoryToMonitor < 0:
		cause = errors.New("categoryToMonitor must be greater than or equal to 0")
	}

	if cause != nil {
		return apperr.Wrap(apperr.InvalidArgument, "Invalid webhook.", cause, "ExpenseAddedWebhook.Validate")
	}
	return nil
}

// Monitors reports whether the webhook watches the given budget category
func (w *ExpenseAddedWebhook) Monitors(budgetID string, categoryIndex int) bool {
	return w.BudgetIDToMonitor == budgetID && w.CategoryToMonitor == categoryIndex
}
