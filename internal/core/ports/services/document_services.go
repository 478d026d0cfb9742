package services

import (
	"context"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/SscSPs/bizbooks_app/internal/dto"
)

// DocumentReaderSvc defines read operations for sales and purchase documents.
type DocumentReaderSvc interface {
	// GetDocumentByID retrieves one document of the requesting user.
	GetDocumentByID(ctx context.Context, kind domain.DocumentKind, documentID string, userID string) (*domain.TransactionDocument, error)

	// ListDocuments retrieves a filtered, paginated list of documents.
	ListDocuments(ctx context.Context, kind domain.DocumentKind, params dto.ListDocumentsParams, userID string) (*dto.ListDocumentsResponse, error)

	// PreviewNextNumber computes the number the next created document would get.
	// Empty prefix or suffix fall back to the defaults for kind.
	PreviewNextNumber(ctx context.Context, kind domain.DocumentKind, prefix, suffix string, userID string) (string, error)
}

// DocumentWriterSvc defines write operations for sales and purchase documents.
type DocumentWriterSvc interface {
	// CreateDocument numbers, totals and reconciles a draft and stores it.
	CreateDocument(ctx context.Context, kind domain.DocumentKind, req dto.CreateDocumentRequest, userID string) (*domain.TransactionDocument, error)

	// UpdateDocument applies an edit and recomputes every derived field.
	UpdateDocument(ctx context.Context, kind domain.DocumentKind, documentID string, req dto.UpdateDocumentRequest, userID string) (*domain.TransactionDocument, error)

	// RecordPayment increments the paid amount of a document.
	RecordPayment(ctx context.Context, kind domain.DocumentKind, documentID string, req dto.RecordPaymentRequest, userID string) (*domain.TransactionDocument, error)

	// DeleteDocument permanently removes a document. Siblings are not renumbered.
	DeleteDocument(ctx context.Context, kind domain.DocumentKind, documentID string, userID string) error
}

// DocumentSvcFacade combines all document service interfaces.
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
