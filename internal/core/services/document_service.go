package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizbooks_app/internal/apperrors"
	"github.com/SscSPs/bizbooks_app/internal/core/billing"
	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bizbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks_app/internal/core/ports/services"
	"github.com/SscSPs/bizbooks_app/internal/dto"
	"github.com/SscSPs/bizbooks_app/internal/utils/period"
	"github.com/google/uuid"
)

const defaultNumberingRetries = 5

// NumberingConfig controls how document numbers are assigned.
type NumberingConfig struct {
	PadWidth   int
	MaxRetries int
}

type documentService struct {
	BaseService
	repo      portsrepo.DocumentRepositoryFacade
	numbering NumberingConfig
}

// NewDocumentService creates the service for sales invoices and purchase orders.
func NewDocumentService(repo portsrepo.DocumentRepositoryFacade, numbering NumberingConfig, options ...ServiceOption) portssvc.DocumentSvcFacade {
	if numbering.PadWidth <= 0 {
		numbering.PadWidth = billing.DefaultPadWidth
	}
	if numbering.MaxRetries <= 0 {
		numbering.MaxRetries = defaultNumberingRetries
	}
	svc := &documentService{
		BaseService: newBaseService(),
		repo:        repo,
		numbering:   numbering,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func checkKind(kind domain.DocumentKind) error {
	if !kind.Valid() {
		return apperrors.NewFieldError(apperrors.ErrValidation, "kind", "must be sales or purchases")
	}
	return nil
}

// numberFormat applies the caller's prefix and suffix over the defaults of kind.
func (s *documentService) numberFormat(kind domain.DocumentKind, prefix, suffix string) (billing.NumberFormat, error) {
	format := billing.DefaultNumbering(kind, s.Now())
	format.PadWidth = s.numbering.PadWidth
	if p := strings.TrimSpace(prefix); p != "" {
		format.Prefix = p
	}
	if sfx := strings.TrimSpace(suffix); sfx != "" {
		format.Suffix = sfx
	}
	if err := format.Validate(); err != nil {
		return billing.NumberFormat{}, err
	}
	return format, nil
}

func resolvePaymentMode(mode domain.PaymentMode) (domain.PaymentMode, error) {
	if mode == "" {
		return domain.PaymentModeCash, nil
	}
	if !mode.Valid() {
		return "", apperrors.NewFieldError(apperrors.ErrValidation, "paymentMode", "must be one of cash, card, upi, bank")
	}
	return mode, nil
}

func (s *documentService) GetDocumentByID(ctx context.Context, kind domain.DocumentKind, documentID string, userID string) (*domain.TransactionDocument, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	doc, err := s.repo.FindDocumentByID(ctx, userID, kind, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get document", slog.String("document_id", documentID), slog.String("kind", string(kind)))
		}
		return nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	return doc, nil
}

func (s *documentService) ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams, userID string) (*dto.ListDocumentsResponse, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	bounds, err := period.Resolve(period.Range(params.Range), params.From, params.To, s.Now())
	if err != nil {
		return nil, err
	}

	filter := domain.DocumentFilter{
		Search:    strings.TrimSpace(params.Search),
		Status:    domain.PaymentStatus(params.Status),
		From:      bounds.From,
		To:        bounds.To,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "status", "must be one of pending, partial, paid")
	}

	docs, nextToken, err := s.repo.FindDocuments(ctx, userID, kind, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	resp := dto.ToListDocumentsResponse(docs, nextToken)
	return &resp, nil
}

func (s *documentService) PreviewNextNumber(ctx context.Context, kind domain.DocumentKind, prefix, suffix string, userID string) (string, error) {
	if err := checkKind(kind); err != nil {
		return "", err
	}
	format, err := s.numberFormat(kind, prefix, suffix)
	if err != nil {
		return "", err
	}
	existing, err := s.repo.ListDocumentNumbers(ctx, userID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to load document numbers", slog.String("kind", string(kind)))
		return "", fmt.Errorf("failed to load %s numbers: %w", kind, err)
	}
	return format.Next(existing)
}

// CreateDocument validates, totals and reconciles the draft, then assigns the next free
// number and inserts it. Losing a numbering race to a concurrent create is detected by
// the store and retried with a fresh view of the collection.
func (s *documentService) CreateDocument(ctx context.Context, kind domain.DocumentKind, req dto.CreateDocumentRequest, userID string) (*domain.TransactionDocument, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	format, err := s.numberFormat(kind, req.NumberPrefix, req.NumberSuffix)
	if err != nil {
		return nil, err
	}
	mode, err := resolvePaymentMode(req.PaymentMode)
	if err != nil {
		return nil, err
	}
	if req.DueDate != nil && req.DueDate.Before(req.IssueDate) {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "dueDate", "must not be before issueDate")
	}

	now := s.Now()
	doc := domain.TransactionDocument{
		DocumentID:        uuid.NewString(),
		UserID:            userID,
		Kind:              kind,
		NumberPrefix:      format.Prefix,
		NumberSuffix:      format.Suffix,
		CounterpartyName:  strings.TrimSpace(req.CounterpartyName),
		CounterpartyEmail: strings.TrimSpace(req.CounterpartyEmail),
		IssueDate:         req.IssueDate,
		DueDate:           req.DueDate,
		LineItems:         dto.ToLineItems(req.LineItems),
		PaymentMode:       mode,
		PaidAmount:        req.PaidAmount,
		IsMarkedFullyPaid: req.IsMarkedFullyPaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if doc.CounterpartyName == "" {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "counterpartyName", "is required")
	}
	if err := billing.Prepare(&doc); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= s.numbering.MaxRetries; attempt++ {
		existing, err := s.repo.ListDocumentNumbers(ctx, userID, kind)
		if err != nil {
			s.LogError(ctx, err, "Failed to load document numbers", slog.String("kind", string(kind)))
			return nil, fmt.Errorf("failed to load %s numbers: %w", kind, err)
		}
		if doc.DocumentNumber, err = format.Next(existing); err != nil {
			return nil, err
		}

		err = s.repo.SaveDocument(ctx, doc)
		if err == nil {
			s.LogInfo(ctx, "Document created",
				slog.String("document_id", doc.DocumentID),
				slog.String("document_number", doc.DocumentNumber),
				slog.String("kind", string(kind)))
			s.publish(userID, createdEvent(kind), map[string]any{
				"document_id":    doc.DocumentID,
				"grand_total":    doc.GrandTotal.String(),
				"payment_status": string(doc.PaymentStatus),
			})
			return &doc, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicateDocumentNumber) {
			s.LogError(ctx, err, "Failed to save document", slog.String("kind", string(kind)))
			return nil, fmt.Errorf("failed to create document: %w", err)
		}
		s.LogDebug(ctx, "Document number taken, retrying",
			slog.String("document_number", doc.DocumentNumber),
			slog.Int("attempt", attempt))
	}

	err = fmt.Errorf("could not assign a unique number after %d attempts: %w", s.numbering.MaxRetries, apperrors.ErrDuplicateDocumentNumber)
	s.LogError(ctx, err, "Numbering retries exhausted", slog.String("kind", string(kind)))
	return nil, err
}

func createdEvent(kind domain.DocumentKind) string {
	if kind == domain.KindPurchase {
		return "purchase_order_created"
	}
	return "invoice_created"
}

func (s *documentService) UpdateDocument(ctx context.Context, kind domain.DocumentKind, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.TransactionDocument, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	mode, err := resolvePaymentMode(req.PaymentMode)
	if err != nil {
		return nil, err
	}
	if req.DueDate != nil && req.DueDate.Before(req.IssueDate) {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "dueDate", "must not be before issueDate")
	}
	name := strings.TrimSpace(req.CounterpartyName)
	if name == "" {
		return nil, apperrors.NewFieldError(apperrors.ErrValidation, "counterpartyName", "is required")
	}

	updated, err := s.repo.WithDocumentForUpdate(ctx, userID, kind, documentID, func(doc domain.TransactionDocument) (domain.TransactionDocument, error) {
		if err := checkImmutable("numberPrefix", req.NumberPrefix, doc.NumberPrefix); err != nil {
			return doc, err
		}
		if err := checkImmutable("numberSuffix", req.NumberSuffix, doc.NumberSuffix); err != nil {
			return doc, err
		}
		if err := checkImmutable("documentNumber", req.DocumentNumber, doc.DocumentNumber); err != nil {
			return doc, err
		}
		if req.PaidAmount != nil {
			if req.PaidAmount.LessThan(doc.PaidAmount) {
				return doc, apperrors.NewFieldError(apperrors.ErrInvalidPayment, "paidAmount", "cannot be lower than the amount already paid")
			}
			doc.PaidAmount = *req.PaidAmount
		}

		doc.CounterpartyName = name
		doc.CounterpartyEmail = strings.TrimSpace(req.CounterpartyEmail)
		doc.IssueDate = req.IssueDate
		doc.DueDate = req.DueDate
		doc.LineItems = dto.ToLineItems(req.LineItems)
		doc.PaymentMode = mode
		doc.IsMarkedFullyPaid = req.IsMarkedFullyPaid
		doc.LastUpdatedAt = s.Now()
		doc.LastUpdatedBy = userID

		if err := billing.Prepare(&doc); err != nil {
			return doc, err
		}
		return doc, nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update document", slog.String("document_id", documentID))
		}
		return nil, fmt.Errorf("failed to update document %s: %w", documentID, err)
	}

	s.LogInfo(ctx, "Document updated", slog.String("document_id", documentID))
	return updated, nil
}

func checkImmutable(field string, requested *string, stored string) error {
	if requested != nil && *requested != stored {
		return apperrors.NewFieldError(apperrors.ErrValidation, field, "cannot be changed after creation")
	}
	return nil
}

func (s *documentService) RecordPayment(ctx context.Context, kind domain.DocumentKind, documentID string, req dto.RecordPaymentRequest, userID string) (*domain.TransactionDocument, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	// Reject before taking the row lock.
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewFieldError(apperrors.ErrInvalidPayment, "amount", "must be greater than zero")
	}

	updated, err := s.repo.WithDocumentForUpdate(ctx, userID, kind, documentID, func(doc domain.TransactionDocument) (domain.TransactionDocument, error) {
		now := s.Now()
		paid, err := billing.RecordPayment(doc, req.Amount, now)
		if err != nil {
			return doc, err
		}
		paid.LastUpdatedAt = now
		paid.LastUpdatedBy = userID
		return paid, nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to record payment", slog.String("document_id", documentID))
		}
		return nil, fmt.Errorf("failed to record payment on %s: %w", documentID, err)
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("document_id", documentID),
		slog.String("amount", req.Amount.String()),
		slog.String("payment_status", string(updated.PaymentStatus)))
	s.publish(userID, "payment_recorded", map[string]any{
		"document_id":    documentID,
		"kind":           string(kind),
		"amount":         req.Amount.String(),
		"payment_status": string(updated.PaymentStatus),
	})
	return updated, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string, userID string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if err := s.repo.DeleteDocument(ctx, userID, kind, documentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete document", slog.String("document_id", documentID))
		}
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	s.LogInfo(ctx, "Document deleted", slog.String("document_id", documentID), slog.String("kind", string(kind)))
	return nil
}
