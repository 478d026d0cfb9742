package dto

import (
	"time"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"1250.00"`
	Date        time.Time       `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"omitempty,expensecategory" example:"Travel"`
	Notes       string          `json:"notes"`
}

// UpdateExpenseRequest replaces every editable field of an expense.
type UpdateExpenseRequest CreateExpenseRequest

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Search    string     `form:"search"`
	Category  string     `form:"category" binding:"omitempty,expensecategory"`
	Range     string     `form:"range"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int        `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string    `form:"nextToken"`
}

type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListExpensesResponse wraps a page of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Category:    string(e.Category),
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.LastUpdatedAt,
	}
}

func ToListExpensesResponse(expenses []domain.Expense, nextToken *string) ListExpensesResponse {
	resp := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		resp[i] = ToExpenseResponse(&expenses[i])
	}
	return ListExpensesResponse{Expenses: resp, NextToken: nextToken}
}
