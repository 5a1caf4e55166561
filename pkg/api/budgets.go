package api

import "time"

// BudgetRequest тело POST/PUT /budgets. При обновлении пустые поля не меняются,
// а categories и userAccess, если переданы, заменяются целиком.
type BudgetRequest struct {
	BudgetStartDate   time.Time           `json:"budgetStartDate"`
	BudgetName        string              `json:"budgetName" validate:"omitempty,max=128"`
	BudgetDescription string              `json:"budgetDescription" validate:"omitempty,max=256"`
	BudgetIteration   string              `json:"budgetIteration" validate:"omitempty,oneof=weekly monthly yearly event"`
	Categories        []CategoryRequest   `json:"categories" validate:"omitempty,dive"`
	UserAccess        []UserAccessRequest `json:"userAccess" validate:"omitempty,dive"`
	Version           int64               `json:"version" validate:"gte=0"`
}

// CategoryRequest тело POST/PUT /categories
type CategoryRequest struct {
	CategoryName  string           `json:"categoryName" validate:"required,max=128"`
	Expenses      []ExpenseRequest `json:"expenses" validate:"omitempty,dive"`
	CategoryLimit float64          `json:"categoryLimit" validate:"gt=0,lte=10000000"`
}

// ExpenseRequest тело POST/PUT /expenses. Без даты берется текущее время,
// без владельца - текущий пользователь.
type ExpenseRequest struct {
	Date      *time.Time `json:"date"`
	OwnerUUID string     `json:"ownerUUID" validate:"omitempty,uuid"`
	Note      string     `json:"note" validate:"max=128"`
	Amount    float64    `json:"amount" validate:"gt=0"`
}

// UserAccessRequest элемент списка доступа
type UserAccessRequest struct {
	UserUUID    string `json:"userUUID" validate:"required,uuid"`
	AccessLevel string `json:"accessLevel" validate:"required,oneof=owner read write"`
}

// ExpenseListResponse страница расходов и итоги по всей категории
type ExpenseListResponse struct {
	Expenses    any    `json:"expenses"`
	TotalAmount string `json:"totalAmount"`
	TotalCount  int    `json:"totalCount"`
}

// WebhookRequest тело POST /webhooks
type WebhookRequest struct {
	OwnerUUID         string `json:"ownerUUID" validate:"omitempty,uuid"`
	URL               string `json:"url" validate:"required,url"`
	Secret            string `json:"secret" validate:"required,min=8,max=256"`
	BudgetIDToMonitor string `json:"budgetIDToMonitor" validate:"required"`
	CategoryToMonitor int    `json:"categoryToMonitor" validate:"gte=0"`
}
