package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines aggregate queries over a user's books.
// Nil bounds are open.
type ReportingRepository interface {
	// SumDocuments totals grand total and remaining amount of a document collection.
	SumDocuments(ctx context.Context, userID string, kind domain.DocumentKind, from, to *time.Time) (domain.DocumentSums, error)

	// SumExpenses totals expense amounts.
	SumExpenses(ctx context.Context, userID string, from, to *time.Time) (decimal.Decimal, error)

	// MonthlyDocumentTotals groups document grand totals by calendar month of year.
	MonthlyDocumentTotals(ctx context.Context, userID string, kind domain.DocumentKind, year int) ([]domain.MonthlyAmount, error)

	// MonthlyExpenseTotals groups expense amounts by calendar month of year.
	MonthlyExpenseTotals(ctx context.Context, userID string, year int) ([]domain.MonthlyAmount, error)

	// ExpensesByCategory groups expense amounts by category, largest first.
	ExpensesByCategory(ctx context.Context, userID string, from, to *time.Time) ([]domain.CategoryAmount, error)
}
