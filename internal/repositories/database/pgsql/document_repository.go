package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks_app/internal/core/ports/repositories"
	"github.com/SscSPs/bizbooks_app/internal/models"
	"github.com/SscSPs/bizbooks_app/internal/utils/mapping"
	"github.com/SscSPs/bizbooks_app/internal/utils/pagination"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	documentsTable = "documents"
	// documentNumberConstraint is the unique index over (user_id, kind, document_number).
	documentNumberConstraint = "documents_user_kind_number_key"
	defaultPageSize          = 20
)

var documentColumns = []string{
	"document_id", "user_id", "kind", "number_prefix", "number_suffix", "document_number",
	"counterparty_name", "counterparty_email", "issue_date", "due_date", "line_items",
	"subtotal", "tax_total", "grand_total", "payment_mode", "paid_amount", "is_marked_fully_paid",
	"payment_status", "remaining_amount", "last_payment_date",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	pgxscan.Querier
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryWithTx {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryWithTx = (*PgxDocumentRepository)(nil)

func (r *PgxDocumentRepository) ListDocumentNumbers(ctx context.Context, userID string, kind domain.DocumentKind) ([]string, error) {
	sql, args, err := r.Builder().
		Select("document_number").
		From(documentsTable).
		Where(squirrel.Eq{"user_id": userID, "kind": string(kind)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document numbers query: %w", err)
	}

	numbers := []string{}
	if err := pgxscan.Select(ctx, r.Pool, &numbers, sql, args...); err != nil {
		return nil, storeError("failed to list document numbers", err)
	}
	return numbers, nil
}

func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, userID string, kind domain.DocumentKind, documentID string) (*domain.TransactionDocument, error) {
	return r.findDocument(ctx, r.Pool, userID, kind, documentID, false)
}

func (r *PgxDocumentRepository) findDocument(ctx context.Context, q querier, userID string, kind domain.DocumentKind, documentID string, lock bool) (*domain.TransactionDocument, error) {
	builder := r.Builder().
		Select(documentColumns...).
		From(documentsTable).
		Where(squirrel.Eq{"document_id": documentID, "user_id": userID, "kind": string(kind)})
	if lock {
		builder = builder.Suffix("FOR UPDATE")
	}
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document query: %w", err)
	}

	var m models.Document
	if err := pgxscan.Get(ctx, q, &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, storeError("failed to find document "+documentID, err)
	}
	doc := mapping.ToDomainDocument(m)
	return &doc, nil
}

// FindDocuments pages through a collection with a keyset cursor over
// (issue_date, created_at, document_id), newest first.
func (r *PgxDocumentRepository) FindDocuments(ctx context.Context, userID string, kind domain.DocumentKind, filter domain.DocumentFilter) ([]domain.TransactionDocument, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	builder := r.Builder().
		Select(documentColumns...).
		From(documentsTable).
		Where(squirrel.Eq{"user_id": userID, "kind": string(kind)})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"counterparty_name": pattern},
			squirrel.ILike{"document_number": pattern},
		})
	}
	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"payment_status": string(filter.Status)})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"issue_date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"issue_date": *filter.To})
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewFieldError(apperrors.ErrValidation, "nextToken", "is malformed")
		}
		builder = builder.Where(squirrel.Expr("(issue_date, created_at, document_id) < (?, ?, ?)", cursor.Date, cursor.CreatedAt, cursor.ID))
	}

	sql, args, err := builder.
		OrderBy("issue_date DESC", "created_at DESC", "document_id DESC").
		Limit(uint64(fetchLimit)).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build documents query: %w", err)
	}

	rows := make([]models.Document, 0, fetchLimit)
	if err := pgxscan.Select(ctx, r.Pool, &rows, sql, args...); err != nil {
		return nil, nil, storeError("failed to query "+string(kind), err)
	}

	var nextToken *string
	if len(rows) > limit {
		last := rows[limit-1]
		token := pagination.EncodeToken(last.IssueDate, last.CreatedAt, last.DocumentID)
		nextToken = &token
		rows = rows[:limit]
	}
	return mapping.ToDomainDocumentSlice(rows), nextToken, nil
}

func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.TransactionDocument) error {
	m := mapping.ToModelDocument(doc)
	lineItems, err := json.Marshal(m.LineItems)
	if err != nil {
		return fmt.Errorf("encode line items: %w", err)
	}

	sql, args, err := r.Builder().
		Insert(documentsTable).
		Columns(documentColumns...).
		Values(
			m.DocumentID, m.UserID, m.Kind, m.NumberPrefix, m.NumberSuffix, m.DocumentNumber,
			m.CounterpartyName, m.CounterpartyEmail, m.IssueDate, m.DueDate, lineItems,
			m.Subtotal, m.TaxTotal, m.GrandTotal, m.PaymentMode, m.PaidAmount, m.IsMarkedFullyPaid,
			m.PaymentStatus, m.RemainingAmount, m.LastPaymentDate,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build document insert: %w", err)
	}

	if _, err := r.Pool.Exec(ctx, sql, args...); err != nil {
		return documentWriteError("failed to save document", err)
	}
	return nil
}

func (r *PgxDocumentRepository) updateDocument(ctx context.Context, q querier, doc domain.TransactionDocument) error {
	m := mapping.ToModelDocument(doc)
	lineItems, err := json.Marshal(m.LineItems)
	if err != nil {
		return fmt.Errorf("encode line items: %w", err)
	}

	// document_number, prefix and suffix are written once at insert.
	sql, args, err := r.Builder().
		Update(documentsTable).
		SetMap(map[string]any{
			"counterparty_name":    m.CounterpartyName,
			"counterparty_email":   m.CounterpartyEmail,
			"issue_date":           m.IssueDate,
			"due_date":             m.DueDate,
			"line_items":           lineItems,
			"subtotal":             m.Subtotal,
			"tax_total":            m.TaxTotal,
			"grand_total":          m.GrandTotal,
			"payment_mode":         m.PaymentMode,
			"paid_amount":          m.PaidAmount,
			"is_marked_fully_paid": m.IsMarkedFullyPaid,
			"payment_status":       m.PaymentStatus,
			"remaining_amount":     m.RemainingAmount,
			"last_payment_date":    m.LastPaymentDate,
			"last_updated_at":      m.LastUpdatedAt,
			"last_updated_by":      m.LastUpdatedBy,
		}).
		Where(squirrel.Eq{"document_id": m.DocumentID, "user_id": m.UserID, "kind": m.Kind}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build document update: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return documentWriteError("failed to update document "+m.DocumentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// WithDocumentForUpdate holds a row lock on the document for the duration of fn
// so concurrent edits and payments against the same document are applied one after another.
func (r *PgxDocumentRepository) WithDocumentForUpdate(ctx context.Context, userID string, kind domain.DocumentKind, documentID string, fn portsrepo.DocumentMutator) (*domain.TransactionDocument, error) {
	var updated domain.TransactionDocument
	err := inTx(ctx, r, func(tx pgx.Tx) error {
		current, err := r.findDocument(ctx, tx, userID, kind, documentID, true)
		if err != nil {
			return err
		}
		if updated, err = fn(*current); err != nil {
			return err
		}
		return r.updateDocument(ctx, tx, updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, userID string, kind domain.DocumentKind, documentID string) error {
	sql, args, err := r.Builder().
		Delete(documentsTable).
		Where(squirrel.Eq{"document_id": documentID, "user_id": userID, "kind": string(kind)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build document delete: %w", err)
	}

	tag, err := r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return storeError("failed to delete document "+documentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func documentWriteError(msg string, err error) error {
	if constraint, ok := uniqueViolation(err); ok {
		if constraint == documentNumberConstraint {
			return fmt.Errorf("%s: %w", msg, apperrors.ErrDuplicateDocumentNumber)
		}
		return fmt.Errorf("%s: %w", msg, apperrors.ErrDuplicate)
	}
	return storeError(msg, err)
}
