package ports

import (
	"context"

	"abusetriage/internal/domain"
)

// Reports accepts abuse report submissions.
type Reports interface {
	SubmitReport(ctx context.Context, in domain.ReportSubmission) (domain.ReportSummary, error)
}

// Statuses applies reviewer triage decisions.
type Statuses interface {
	UpdateStatus(ctx context.Context, in domain.StatusUpdate) (domain.StatusRecord, error)
}

// Queries provides read-only projections for dashboards.
type Queries interface {
	ListReports(ctx context.Context) ([]domain.ReportSummary, error)
	GetDomainDetail(ctx context.Context, name string) (domain.DomainDetail, error)
}

// Health checks store connectivity.
type Health interface {
	Ping(ctx context.Context) error
}
