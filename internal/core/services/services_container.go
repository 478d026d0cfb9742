package services

import (
	portsrepo "github.com/SscSPs/bizbooks_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizbooks_app/internal/core/ports/services"
	"github.com/SscSPs/bizbooks_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// events may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, events portssvc.EventPublisher) *portssvc.ServiceContainer {
	var opts []ServiceOption
	if events != nil {
		opts = append(opts, WithEventPublisher(events))
	}

	container := &portssvc.ServiceContainer{}

	container.Document = NewDocumentService(repos.DocumentRepo, NumberingConfig{
		PadWidth:   cfg.NumberingPadWidth,
		MaxRetries: cfg.NumberingMaxRetries,
	}, opts...)
	container.Expense = NewExpenseService(repos.ExpenseRepo, opts...)
	container.User = NewUserService(repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.DocumentRepo, repos.ExpenseRepo)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
