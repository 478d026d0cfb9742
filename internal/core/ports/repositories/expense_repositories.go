package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
)

// ExpenseReader defines read operations for expenses.
type ExpenseReader interface {
	FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error)
	FindExpenses(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, *string, error)
}

// ExpenseWriter defines write operations for expenses.
type ExpenseWriter interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
