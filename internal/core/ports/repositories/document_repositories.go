package repositories

import (
	"context"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
)

// DocumentMutator transforms a locked document before it is written back.
type DocumentMutator func(doc domain.TransactionDocument) (domain.TransactionDocument, error)

// DocumentReader defines read operations for sales and purchase documents.
type DocumentReader interface {
	// ListDocumentNumbers returns every document number in the user's collection of kind.
	ListDocumentNumbers(ctx context.Context, userID string, kind domain.DocumentKind) ([]string, error)

	// FindDocumentByID retrieves a document owned by userID.
	FindDocumentByID(ctx context.Context, userID string, kind domain.DocumentKind, documentID string) (*domain.TransactionDocument, error)

	// FindDocuments retrieves a filtered page of documents, newest issue date first.
	// It returns the documents, a token for the next page (if any), and an error.
	FindDocuments(ctx context.Context, userID string, kind domain.DocumentKind, filter domain.DocumentFilter) ([]domain.TransactionDocument, *string, error)
}

// DocumentWriter defines write operations for sales and purchase documents.
type DocumentWriter interface {
	// SaveDocument inserts a new document. A taken number yields apperrors.ErrDuplicateDocumentNumber.
	SaveDocument(ctx context.Context, doc domain.TransactionDocument) error

	// WithDocumentForUpdate loads the document under a row lock, applies fn and writes the
	// mutable fields of the result in the same transaction. It is the only update-by-id path.
	WithDocumentForUpdate(ctx context.Context, userID string, kind domain.DocumentKind, documentID string, fn DocumentMutator) (*domain.TransactionDocument, error)

	// DeleteDocument permanently removes a document.
	DeleteDocument(ctx context.Context, userID string, kind domain.DocumentKind, documentID string) error
}

// DocumentRepositoryFacade combines all document repository interfaces.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
