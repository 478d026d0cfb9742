package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/SscSPs/bizbooks_app/internal/core/services"
	"github.com/SscSPs/bizbooks_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportingService_GetDashboard(t *testing.T) {
	reporting := new(MockReportingRepository)
	svc := services.NewReportingService(reporting, new(MockDocumentRepository), new(MockExpenseRepository), services.WithClock(fixedClock))

	reporting.On("SumDocuments", mock.Anything, "user-1", domain.KindSale, mock.Anything, mock.Anything).
		Return(domain.DocumentSums{GrandTotal: dec("5000"), Remaining: dec("1200"), Count: 4}, nil)
	reporting.On("SumDocuments", mock.Anything, "user-1", domain.KindPurchase, mock.Anything, mock.Anything).
		Return(domain.DocumentSums{GrandTotal: dec("2000"), Remaining: dec("300"), Count: 2}, nil)
	reporting.On("SumExpenses", mock.Anything, "user-1", mock.Anything, mock.Anything).Return(dec("750"), nil)
	reporting.On("MonthlyDocumentTotals", mock.Anything, "user-1", domain.KindSale, 2024).
		Return([]domain.MonthlyAmount{{Month: 1, Amount: dec("3000")}, {Month: 3, Amount: dec("2000")}}, nil)
	reporting.On("MonthlyDocumentTotals", mock.Anything, "user-1", domain.KindPurchase, 2024).
		Return([]domain.MonthlyAmount{{Month: 2, Amount: dec("2000")}}, nil)
	reporting.On("MonthlyExpenseTotals", mock.Anything, "user-1", 2024).
		Return([]domain.MonthlyAmount{{Month: 3, Amount: dec("750")}}, nil)
	reporting.On("ExpensesByCategory", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Return([]domain.CategoryAmount{{Category: "Rent", Amount: dec("750")}}, nil)

	summary, err := svc.GetDashboard(context.Background(), dto.PeriodParams{Range: "thisYear"}, "user-1")

	require.NoError(t, err)
	assert.True(t, dec("2250").Equal(summary.Profit), "profit = sales - (purchases + expenses)")
	assert.True(t, dec("1200").Equal(summary.Receivables))
	assert.True(t, dec("300").Equal(summary.Payables))
	assert.Equal(t, int64(4), summary.SalesCount)
	require.Len(t, summary.Monthly, 12)
	assert.Equal(t, time.January, summary.Monthly[0].Month)
	assert.True(t, dec("3000").Equal(summary.Monthly[0].Sales))
	assert.True(t, dec("2000").Equal(summary.Monthly[1].Purchases))
	assert.True(t, dec("750").Equal(summary.Monthly[2].Expenses))
	assert.True(t, summary.Monthly[11].Sales.IsZero())
	require.NotNil(t, summary.From)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *summary.From)
	reporting.AssertExpectations(t)
}

func TestReportingService_GetDashboard_InvalidRange(t *testing.T) {
	reporting := new(MockReportingRepository)
	svc := services.NewReportingService(reporting, new(MockDocumentRepository), new(MockExpenseRepository))

	_, err := svc.GetDashboard(context.Background(), dto.PeriodParams{Range: "custom"}, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	reporting.AssertNotCalled(t, "SumDocuments", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingService_GetReport_WalksAllPages(t *testing.T) {
	documents := new(MockDocumentRepository)
	svc := services.NewReportingService(new(MockReportingRepository), documents, new(MockExpenseRepository), services.WithClock(fixedClock))

	page := func(n int) []domain.TransactionDocument {
		docs := make([]domain.TransactionDocument, n)
		for i := range docs {
			docs[i] = domain.TransactionDocument{DocumentID: "d", Kind: domain.KindSale, GrandTotal: decimal.NewFromInt(int64(i))}
		}
		return docs
	}
	documents.On("FindDocuments", mock.Anything, "user-1", domain.KindSale, mock.MatchedBy(func(f domain.DocumentFilter) bool {
		return f.NextToken == nil && f.Limit == 100
	})).Return(page(100), "page-2", nil).Once()
	documents.On("FindDocuments", mock.Anything, "user-1", domain.KindSale, mock.MatchedBy(func(f domain.DocumentFilter) bool {
		return f.NextToken != nil && *f.NextToken == "page-2"
	})).Return(page(7), nil, nil).Once()

	report, err := svc.GetReport(context.Background(), "sales", dto.PeriodParams{}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "sales", report.Kind)
	assert.Equal(t, 107, report.Count)
	assert.Len(t, report.Documents, 107)
	assert.Nil(t, report.Expenses)
	documents.AssertExpectations(t)
}

func TestReportingService_GetReport_Expenses(t *testing.T) {
	expenses := new(MockExpenseRepository)
	svc := services.NewReportingService(new(MockReportingRepository), new(MockDocumentRepository), expenses, services.WithClock(fixedClock))

	expenses.On("FindExpenses", mock.Anything, "user-1", mock.Anything).
		Return([]domain.Expense{{ExpenseID: "e1", Amount: dec("10")}}, nil, nil).Once()

	report, err := svc.GetReport(context.Background(), "expenses", dto.PeriodParams{Range: "lastMonth"}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 1, report.Count)
	require.NotNil(t, report.To)
	assert.Equal(t, time.February, report.To.Month())
}

func TestReportingService_GetReport_UnknownKind(t *testing.T) {
	svc := services.NewReportingService(new(MockReportingRepository), new(MockDocumentRepository), new(MockExpenseRepository))

	_, err := svc.GetReport(context.Background(), "refunds", dto.PeriodParams{}, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "kind", apperrors.FieldOf(err))
}
