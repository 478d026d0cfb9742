package pgsql

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks_app/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks_app/internal/models"
	"github.com/SscSPs/bizbooks_app/internal/utils/mapping"
	"github.com/SscSPs/bizbooks_app/internal/utils/pagination"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expensesTable = "expenses"

var expenseColumns = []string{
	"expense_id", "user_id", "description", "amount", "expense_date", "category", "notes",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	sql, args, err := r.Builder().
		Select(expenseColumns...).
		From(expensesTable).
		Where(squirrel.Eq{"expense_id": expenseID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build expense query: %w", err)
	}

	var m models.Expense
	if err := pgxscan.Get(ctx, r.Pool, &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError("failed to find expense "+expenseID, err)
	}
	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, userID string, filter domain.ExpenseFilter) ([]domain.Expense, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	fetchLimit := limit + 1

	builder := r.Builder().
		Select(expenseColumns...).
		From(expensesTable).
		Where(squirrel.Eq{"user_id": userID})

	if filter.Search != "" {
		builder = builder.Where(squirrel.ILike{"description": "%" + filter.Search + "%"})
	}
	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": string(filter.Category)})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"expense_date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"expense_date": *filter.To})
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewFieldError(apperrors.ErrValidation, "nextToken", "is malformed")
		}
		builder = builder.Where(squirrel.Expr("(expense_date, created_at, expense_id) < (?, ?, ?)", cursor.Date, cursor.CreatedAt, cursor.ID))
	}

	sql, args, err := builder.
		OrderBy("expense_date DESC", "created_at DESC", "expense_id DESC").
		Limit(uint64(fetchLimit)).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build expenses query: %w", err)
	}

	rows := make([]models.Expense, 0, fetchLimit)
	if err := pgxscan.Select(ctx, r.Pool, &rows, sql, args...); err != nil {
		return nil, nil, storeError("failed to query expenses", err)
	}

	var nextToken *string
	if len(rows) > limit {
		last := rows[limit-1]
		token := pagination.EncodeToken(last.ExpenseDate, last.CreatedAt, last.ExpenseID)
		nextToken = &token
		rows = rows[:limit]
	}
	return mapping.ToDomainExpenseSlice(rows), nextToken, nil
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	sql, args, err := r.Builder().
		Insert(expensesTable).
		Columns(expenseColumns...).
		Values(m.ExpenseID, m.UserID, m.Description, m.Amount, m.ExpenseDate, m.Category, m.Notes,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy).
		ToSql()
	if err != nil {
		return fmt.Errorf("build expense insert: %w", err)
	}

	if _, err := r.Pool.Exec(ctx, sql, args...); err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("failed to save expense: %w", apperrors.ErrDuplicate)
		}
		return storeError("failed to save expense", err)
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	sql, args, err := r.Builder().
		Update(expensesTable).
		SetMap(map[string]any{
			"description":     m.Description,
			"amount":          m.Amount,
			"expense_date":    m.ExpenseDate,
			"category":        m.Category,
			"notes":           m.Notes,
			"last_updated_at": m.LastUpdatedAt,
			"last_updated_by": m.LastUpdatedBy,
		}).
		Where(squirrel.Eq{"expense_id": m.ExpenseID, "user_id": m.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build expense update: %w", err)
	}

	tag, err := r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return storeError("failed to update expense "+m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	sql, args, err := r.Builder().
		Delete(expensesTable).
		Where(squirrel.Eq{"expense_id": expenseID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build expense delete: %w", err)
	}

	tag, err := r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return storeError("failed to delete expense "+expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
