package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks_app/internal/core/ports/repositories"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

type documentSumsRow struct {
	GrandTotal decimal.Decimal `db:"grand_total"`
	Remaining  decimal.Decimal `db:"remaining"`
	Count      int64           `db:"doc_count"`
}

func withDateBounds(b squirrel.SelectBuilder, column string, from, to *time.Time) squirrel.SelectBuilder {
	if from != nil {
		b = b.Where(squirrel.GtOrEq{column: *from})
	}
	if to != nil {
		b = b.Where(squirrel.LtOrEq{column: *to})
	}
	return b
}

func yearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

func (r *reportingRepository) SumDocuments(ctx context.Context, userID string, kind domain.DocumentKind, from, to *time.Time) (domain.DocumentSums, error) {
	builder := r.Builder().
		Select(
			"COALESCE(SUM(grand_total), 0) AS grand_total",
			"COALESCE(SUM(remaining_amount), 0) AS remaining",
			"COUNT(*) AS doc_count",
		).
		From(documentsTable).
		Where(squirrel.Eq{"user_id": userID, "kind": string(kind)})
	sql, args, err := withDateBounds(builder, "issue_date", from, to).ToSql()
	if err != nil {
		return domain.DocumentSums{}, fmt.Errorf("build document sums query: %w", err)
	}

	var row documentSumsRow
	if err := pgxscan.Get(ctx, r.Pool, &row, sql, args...); err != nil {
		return domain.DocumentSums{}, storeError("error querying "+string(kind)+" totals", err)
	}
	return domain.DocumentSums{GrandTotal: row.GrandTotal, Remaining: row.Remaining, Count: row.Count}, nil
}

func (r *reportingRepository) SumExpenses(ctx context.Context, userID string, from, to *time.Time) (decimal.Decimal, error) {
	builder := r.Builder().
		Select("COALESCE(SUM(amount), 0)").
		From(expensesTable).
		Where(squirrel.Eq{"user_id": userID})
	sql, args, err := withDateBounds(builder, "expense_date", from, to).ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build expense sum query: %w", err)
	}

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return decimal.Zero, storeError("error querying expense total", err)
	}
	return total, nil
}

func (r *reportingRepository) monthly(ctx context.Context, table, dateColumn, amountColumn string, where squirrel.Sqlizer, year int) ([]domain.MonthlyAmount, error) {
	start, end := yearBounds(year)
	sql, args, err := r.Builder().
		Select(
			fmt.Sprintf("EXTRACT(MONTH FROM date_trunc('month', %s))::int AS month", dateColumn),
			fmt.Sprintf("COALESCE(SUM(%s), 0) AS amount", amountColumn),
		).
		From(table).
		Where(where).
		Where(squirrel.GtOrEq{dateColumn: start}).
		Where(squirrel.Lt{dateColumn: end}).
		GroupBy("1").
		OrderBy("1").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build monthly totals query: %w", err)
	}

	result := []domain.MonthlyAmount{}
	if err := pgxscan.Select(ctx, r.Pool, &result, sql, args...); err != nil {
		return nil, storeError("error querying monthly totals of "+table, err)
	}
	return result, nil
}

func (r *reportingRepository) MonthlyDocumentTotals(ctx context.Context, userID string, kind domain.DocumentKind, year int) ([]domain.MonthlyAmount, error) {
	return r.monthly(ctx, documentsTable, "issue_date", "grand_total",
		squirrel.Eq{"user_id": userID, "kind": string(kind)}, year)
}

func (r *reportingRepository) MonthlyExpenseTotals(ctx context.Context, userID string, year int) ([]domain.MonthlyAmount, error) {
	return r.monthly(ctx, expensesTable, "expense_date", "amount", squirrel.Eq{"user_id": userID}, year)
}

func (r *reportingRepository) ExpensesByCategory(ctx context.Context, userID string, from, to *time.Time) ([]domain.CategoryAmount, error) {
	builder := r.Builder().
		Select("category", "SUM(amount) AS amount").
		From(expensesTable).
		Where(squirrel.Eq{"user_id": userID})
	sql, args, err := withDateBounds(builder, "expense_date", from, to).
		GroupBy("category").
		OrderBy("amount DESC", "category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build expenses by category query: %w", err)
	}

	result := []domain.CategoryAmount{}
	if err := pgxscan.Select(ctx, r.Pool, &result, sql, args...); err != nil {
		return nil, storeError("error querying expenses by category", err)
	}
	return result, nil
}
