package models

import "github.com/google/uuid"

const (
	MaxCategoryNameLen = 128
	MaxCategoryLimit   = 10_000_000
)

// Category groups expenses under a spending limit.
// Categories are addressed by their index in Budget.Categories.
type Category struct {
	ID            string    `json:"id"` // стабильный внутренний id, наружу адресация по индексу
	CategoryName  string    `json:"categoryName"`
	Expenses      []Expense `json:"expenses"`
	CategoryLimit float64   `json:"categoryLimit"`
}

// NewCategory validates name and limit. The expenses slice is taken as is.
func NewCategory(name string, limit float64, expenses []Expense) (*Category, error) {
	const origin = "Category constructor"

	if name == "" {
		return nil, invalid("Category name is required.", origin)
	}
	if len(name) > MaxCategoryNameLen {
		return nil, invalid("The category name must be of maximum length 128 characters.", origin)
	}
	if limit <= 0 {
		return nil, invalid("Category limit must be greater than 0.", origin)
	}
	if limit > MaxCategoryLimit {
		return nil, invalid("Category limit must be less than 10000000 (ten million).", origin)
	}

	if expenses == nil {
		expenses = []Expense{}
	}

	return &Category{
		ID:            uuid.NewString(),
		CategoryName:  name,
		CategoryLimit: limit,
		Expenses:      expenses,
	}, nil
}
