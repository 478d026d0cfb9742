package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks_app/internal/core/ports/services"
	"github.com/SscSPs/bizbooks_app/internal/dto"
	"github.com/SscSPs/bizbooks_app/internal/utils/period"
	"github.com/shopspring/decimal"
)

// reportPageSize is the page size used while walking a collection for a report.
const reportPageSize = 100

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	documentRepo  portsrepo.DocumentReader
	expenseRepo   portsrepo.ExpenseReader
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, documentRepo portsrepo.DocumentReader, expenseRepo portsrepo.ExpenseReader, options ...ServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		BaseService:   newBaseService(),
		reportingRepo: repo,
		documentRepo:  documentRepo,
		expenseRepo:   expenseRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) resolve(params dto.PeriodParams) (period.Bounds, error) {
	return period.Resolve(period.Range(params.Range), params.From, params.To, s.Now())
}

// GetDashboard returns totals for the period plus a month-by-month breakdown of the
// calendar year the period ends in.
func (s *reportingService) GetDashboard(ctx context.Context, params dto.PeriodParams, userID string) (*domain.DashboardSummary, error) {
	bounds, err := s.resolve(params)
	if err != nil {
		return nil, err
	}

	sales, err := s.reportingRepo.SumDocuments(ctx, userID, domain.KindSale, bounds.From, bounds.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum sales")
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}
	purchases, err := s.reportingRepo.SumDocuments(ctx, userID, domain.KindPurchase, bounds.From, bounds.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum purchases")
		return nil, fmt.Errorf("failed to sum purchases: %w", err)
	}
	expenses, err := s.reportingRepo.SumExpenses(ctx, userID, bounds.From, bounds.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum expenses")
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	year := s.Now().Year()
	if bounds.To != nil {
		year = bounds.To.Year()
	}
	monthly, err := s.monthlyTotals(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.reportingRepo.ExpensesByCategory(ctx, userID, bounds.From, bounds.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to group expenses by category")
		return nil, fmt.Errorf("failed to group expenses: %w", err)
	}

	summary := &domain.DashboardSummary{
		From:               bounds.From,
		To:                 bounds.To,
		TotalSales:         sales.GrandTotal,
		TotalPurchases:     purchases.GrandTotal,
		TotalExpenses:      expenses,
		Profit:             sales.GrandTotal.Sub(purchases.GrandTotal.Add(expenses)),
		Receivables:        sales.Remaining,
		Payables:           purchases.Remaining,
		SalesCount:         sales.Count,
		PurchaseCount:      purchases.Count,
		Monthly:            monthly,
		ExpensesByCategory: byCategory,
	}
	s.LogDebug(ctx, "Dashboard computed", slog.String("profit", summary.Profit.String()))
	return summary, nil
}

func (s *reportingService) monthlyTotals(ctx context.Context, userID string, year int) ([]domain.MonthlyTotals, error) {
	months := make([]domain.MonthlyTotals, 12)
	for i := range months {
		months[i] = domain.MonthlyTotals{
			Month:     time.Month(i + 1),
			Sales:     decimal.Zero,
			Purchases: decimal.Zero,
			Expenses:  decimal.Zero,
		}
	}
	fill := func(rows []domain.MonthlyAmount, set func(*domain.MonthlyTotals, decimal.Decimal)) {
		for _, row := range rows {
			if row.Month >= 1 && row.Month <= 12 {
				set(&months[row.Month-1], row.Amount)
			}
		}
	}

	sales, err := s.reportingRepo.MonthlyDocumentTotals(ctx, userID, domain.KindSale, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly sales: %w", err)
	}
	fill(sales, func(m *domain.MonthlyTotals, v decimal.Decimal) { m.Sales = v })

	purchases, err := s.reportingRepo.MonthlyDocumentTotals(ctx, userID, domain.KindPurchase, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly purchases: %w", err)
	}
	fill(purchases, func(m *domain.MonthlyTotals, v decimal.Decimal) { m.Purchases = v })

	expenses, err := s.reportingRepo.MonthlyExpenseTotals(ctx, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly expenses: %w", err)
	}
	fill(expenses, func(m *domain.MonthlyTotals, v decimal.Decimal) { m.Expenses = v })

	return months, nil
}

// GetReport collects every record of one collection in the period, newest first.
func (s *reportingService) GetReport(ctx context.Context, reportKind string, params dto.PeriodParams, userID string) (*dto.ReportResponse, error) {
	bounds, err := s.resolve(params)
	if err != nil {
		return nil, err
	}
	resp := &dto.ReportResponse{Kind: reportKind, From: bounds.From, To: bounds.To}

	switch reportKind {
	case string(domain.KindSale), string(domain.KindPurchase):
		kind := domain.DocumentKind(reportKind)
		filter := domain.DocumentFilter{From: bounds.From, To: bounds.To, Limit: reportPageSize}
		resp.Documents = []dto.DocumentResponse{}
		for {
			docs, next, err := s.documentRepo.FindDocuments(ctx, userID, kind, filter)
			if err != nil {
				s.LogError(ctx, err, "Failed to load report rows", slog.String("kind", reportKind))
				return nil, fmt.Errorf("failed to load %s report: %w", reportKind, err)
			}
			resp.Documents = append(resp.Documents, dto.ToListDocumentsResponse(docs, nil).Documents...)
			if next == nil {
				break
			}
			filter.NextToken = next
		}
		resp.Count = len(resp.Documents)
	case "expenses":
		filter := domain.ExpenseFilter{From: bounds.From, To: bounds.To, Limit: reportPageSize}
		resp.Expenses = []dto.ExpenseResponse{}
		for {
			expenses, next, err := s.expenseRepo.FindExpenses(ctx, userID, filter)
			if err != nil {
				s.LogError(ctx, err, "Failed to load report rows", slog.String("kind", reportKind))
				return nil, fmt.Errorf("failed to load expenses report: %w", err)
			}
			resp.Expenses = append(resp.Expenses, dto.ToListExpensesResponse(expenses, nil).Expenses...)
			if next == nil {
				break
			}
			filter.NextToken = next
		}
		resp.Count = len(resp.Expenses)
	default:
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "kind", "must be sales, purchases or expenses")
	}

	return resp, nil
}
