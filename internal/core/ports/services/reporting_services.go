package services

import (
	"context"

	"github.com/SscSPs/bizbooks_app/internal/core/domain"
	"github.com/SscSPs/bizbooks_app/internal/dto"
)

// ReportingService defines the interface for dashboard and report data
type ReportingService interface {
	// GetDashboard summarizes sales, purchases and expenses for a period.
	GetDashboard(ctx context.Context, params dto.PeriodParams, userID string) (*domain.DashboardSummary, error)

	// GetReport returns the records of one collection (sales, purchases or expenses) for a period.
	GetReport(ctx context.Context, reportKind string, params dto.PeriodParams, userID string) (*dto.ReportResponse, error)
}
