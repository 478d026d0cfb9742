package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/SscSPs/bizbooks_app/internal/core/services"
	"github.com/SscSPs/bizbooks_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpenseService_CreateExpense(t *testing.T) {
	repo := new(MockExpenseRepository)
	events := &recordingPublisher{}
	svc := services.NewExpenseService(repo, services.WithClock(fixedClock), services.WithEventPublisher(events))

	repo.On("SaveExpense", mock.Anything, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Category == domain.CategoryOther && e.UserID == "user-1" && e.Description == "Printer ink"
	})).Return(nil).Once()

	expense, err := svc.CreateExpense(context.Background(), dto.CreateExpenseRequest{
		Description: "  Printer ink ",
		Amount:      dec("1250.50"),
		Date:        fixedNow,
	}, "user-1")

	require.NoError(t, err)
	assert.NotEmpty(t, expense.ExpenseID)
	assert.Equal(t, fixedNow, expense.CreatedAt)
	assert.Equal(t, []string{"expense_created"}, events.Events())
	repo.AssertExpectations(t)
}

func TestExpenseService_CreateExpense_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.CreateExpenseRequest
		field string
	}{
		{name: "missing description", req: dto.CreateExpenseRequest{Amount: dec("10"), Date: fixedNow}, field: "description"},
		{name: "zero amount", req: dto.CreateExpenseRequest{Description: "Taxi", Amount: dec("0"), Date: fixedNow}, field: "amount"},
		{name: "missing date", req: dto.CreateExpenseRequest{Description: "Taxi", Amount: dec("10")}, field: "date"},
		{name: "unknown category", req: dto.CreateExpenseRequest{Description: "Taxi", Amount: dec("10"), Date: fixedNow, Category: "Gifts"}, field: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockExpenseRepository)
			svc := services.NewExpenseService(repo)

			_, err := svc.CreateExpense(context.Background(), tt.req, "user-1")

			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Equal(t, tt.field, apperrors.FieldOf(err))
			repo.AssertNotCalled(t, "SaveExpense", mock.Anything, mock.Anything)
		})
	}
}

func TestExpenseService_UpdateExpense(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := services.NewExpenseService(repo, services.WithClock(fixedClock))

	stored := &domain.Expense{ExpenseID: "exp-1", UserID: "user-1", Description: "Taxi", Amount: dec("10"), Date: fixedNow, Category: "Travel"}
	repo.On("FindExpenseByID", mock.Anything, "user-1", "exp-1").Return(stored, nil).Once()
	repo.On("UpdateExpense", mock.Anything, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.Equal(dec("42")) && e.Category == "Meals"
	})).Return(nil).Once()

	updated, err := svc.UpdateExpense(context.Background(), "exp-1", dto.UpdateExpenseRequest{
		Description: "Client lunch",
		Amount:      dec("42"),
		Date:        fixedNow,
		Category:    "Meals",
	}, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Client lunch", updated.Description)
	assert.Equal(t, "user-1", updated.LastUpdatedBy)
	repo.AssertExpectations(t)
}

func TestExpenseService_UpdateExpense_NotFound(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := services.NewExpenseService(repo)
	repo.On("FindExpenseByID", mock.Anything, "user-1", "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.UpdateExpense(context.Background(), "missing", dto.UpdateExpenseRequest{
		Description: "Taxi",
		Amount:      dec("10"),
		Date:        fixedNow,
	}, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestExpenseService_ListExpenses(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := services.NewExpenseService(repo, services.WithClock(fixedClock))

	repo.On("FindExpenses", mock.Anything, "user-1", mock.MatchedBy(func(f domain.ExpenseFilter) bool {
		return f.Category == "Rent" && f.From != nil && f.From.Year() == 2024 && f.From.Month() == 1
	})).Return([]domain.Expense{{ExpenseID: "exp-1", Amount: dec("900"), Category: "Rent"}}, nil, nil).Once()

	resp, err := svc.ListExpenses(context.Background(), dto.ListExpensesParams{Category: "Rent", Range: "thisYear", Limit: 20}, "user-1")

	require.NoError(t, err)
	require.Len(t, resp.Expenses, 1)
	assert.Nil(t, resp.NextToken)

	_, err = svc.ListExpenses(context.Background(), dto.ListExpensesParams{Category: "Gifts"}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExpenseService_DeleteExpense(t *testing.T) {
	repo := new(MockExpenseRepository)
	svc := services.NewExpenseService(repo)
	repo.On("DeleteExpense", mock.Anything, "user-1", "exp-1").Return(nil).Once()
	repo.On("DeleteExpense", mock.Anything, "user-1", "exp-2").Return(apperrors.ErrNotFound).Once()

	assert.NoError(t, svc.DeleteExpense(context.Background(), "exp-1", "user-1"))
	assert.ErrorIs(t, svc.DeleteExpense(context.Background(), "exp-2", "user-1"), apperrors.ErrNotFound)
}
