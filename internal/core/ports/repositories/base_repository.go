package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens and finishes the pgx transactions a repository runs
// multi-statement writes in.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits tx. Connection failures match apperrors.ErrStoreUnavailable.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls tx back. Rolling back a finished transaction is a no-op.
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// DocumentRepositoryWithTx is a document repository that manages its own
// transactions, as WithDocumentForUpdate requires.
type DocumentRepositoryWithTx interface {
	DocumentRepositoryFacade
	TransactionManager
}
