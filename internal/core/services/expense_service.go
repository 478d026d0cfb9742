package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks_app/internal/core/ports/services"
	"github.com/SscSPs/bizbooks_app/internal/dto"
	"github.com/SscSPs/bizbooks_app/internal/utils/period"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type expenseService struct {
	BaseService
	repo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade, options ...ServiceOption) portssvc.ExpenseSvcFacade {
	svc := &expenseService{BaseService: newBaseService(), repo: repo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

type expenseFields struct {
	description string
	amount      decimal.Decimal
	date        time.Time
	category    domain.ExpenseCategory
	notes       string
}

func validateExpense(req dto.CreateExpenseRequest) (expenseFields, error) {
	f := expenseFields{
		description: strings.TrimSpace(req.Description),
		amount:      req.Amount,
		date:        req.Date,
		category:    domain.ExpenseCategory(strings.TrimSpace(req.Category)),
		notes:       strings.TrimSpace(req.Notes),
	}
	if f.description == "" {
		return f, apperrors.NewFieldError(apperrors.ErrValidation, "description", "is required")
	}
	if !f.amount.IsPositive() {
		return f, apperrors.NewFieldError(apperrors.ErrValidation, "amount", "must be greater than zero")
	}
	if f.date.IsZero() {
		return f, apperrors.NewFieldError(apperrors.ErrValidation, "date", "is required")
	}
	if f.category == "" {
		f.category = domain.CategoryOther
	}
	if !f.category.Valid() {
		return f, apperrors.NewFieldError(apperrors.ErrValidation, "category", "is not a known expense category")
	}
	return f, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string, userID string) (*domain.Expense, error) {
	expense, err := s.repo.FindExpenseByID(ctx, userID, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get expense", slog.String("expense_id", expenseID))
		}
		return nil, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams, userID string) (*dto.ListExpensesResponse, error) {
	bounds, err := period.Resolve(period.Range(params.Range), params.From, params.To, s.Now())
	if err != nil {
		return nil, err
	}
	category := domain.ExpenseCategory(params.Category)
	if category != "" && !category.Valid() {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "category", "is not a known expense category")
	}

	expenses, nextToken, err := s.repo.FindExpenses(ctx, userID, domain.ExpenseFilter{
		Search:    strings.TrimSpace(params.Search),
		Category:  category,
		From:      bounds.From,
		To:        bounds.To,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	resp := dto.ToListExpensesResponse(expenses, nextToken)
	return &resp, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	f, err := validateExpense(req)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      userID,
		Description: f.description,
		Amount:      f.amount,
		Date:        f.date,
		Category:    f.category,
		Notes:       f.notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.repo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created", slog.String("expense_id", expense.ExpenseID), slog.String("category", string(expense.Category)))
	s.publish(userID, "expense_created", map[string]any{"category": string(expense.Category)})
	return &expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	f, err := validateExpense(dto.CreateExpenseRequest(req))
	if err != nil {
		return nil, err
	}

	expense, err := s.repo.FindExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %s for update: %w", expenseID, err)
	}

	expense.Description = f.description
	expense.Amount = f.amount
	expense.Date = f.date
	expense.Category = f.category
	expense.Notes = f.notes
	expense.LastUpdatedAt = s.Now()
	expense.LastUpdatedBy = userID

	if err := s.repo.UpdateExpense(ctx, *expense); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		}
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	if err := s.repo.DeleteExpense(ctx, userID, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		}
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
