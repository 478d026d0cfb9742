package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory groups expenses on the dashboard.
type ExpenseCategory string

const CategoryOther ExpenseCategory = "Other"

// ExpenseCategories lists the accepted categories in display order.
var ExpenseCategories = []ExpenseCategory{
	"Travel",
	"Meals",
	"Salary",
	"Office Supplies",
	"Equipment",
	"Training",
	"Marketing",
	"Utilities",
	"Broadband",
	"Rent",
	"Insurance",
	"Maintenance",
	CategoryOther,
}

// Valid reports whether c is one of ExpenseCategories.
func (c ExpenseCategory) Valid() bool {
	for _, ec := range ExpenseCategories {
		if c == ec {
			return true
		}
	}
	return false
}

// Expense is a single unnumbered outgoing payment.
type Expense struct {
	ExpenseID   string          `json:"expenseID"`
	UserID      string          `json:"userID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Notes       string          `json:"notes,omitempty"`
	AuditFields
}

// ExpenseFilter narrows an expense listing.
type ExpenseFilter struct {
	Search    string
	Category  ExpenseCategory
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}
