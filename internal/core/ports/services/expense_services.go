package services

import (
	"context"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/SscSPs/bizbooks_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses.
type ExpenseReaderSvc interface {
	GetExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, params dto.ListExpensesParams, userID string) (*dto.ListExpensesResponse, error)
}

// ExpenseWriterSvc defines write operations for expenses.
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string, userID string) error
}

// ExpenseSvcFacade combines all expense service interfaces.
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
