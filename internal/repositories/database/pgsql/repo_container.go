package pgsql

import (
	portsrepo "github.com/SscSPs/bizbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DocumentRepo:  newPgxDocumentRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
