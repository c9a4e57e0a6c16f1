package ports

import (
	"context"

	"abusetriage/internal/domain"
)

// Metrics records triage counters. Implementations must be safe for concurrent use.
type Metrics interface {
	RecordReportSubmitted(ctx context.Context, abuseType domain.AbuseType, risk domain.RiskLevel)
	RecordDomainCreated(ctx context.Context)
	// RecordDomainRace counts first-report submissions that lost the insert
	// race and fell back to the existing row.
	RecordDomainRace(ctx context.Context)
	RecordStatusUpdate(ctx context.Context, status domain.DomainStatus)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) RecordReportSubmitted(context.Context, domain.AbuseType, domain.RiskLevel) {}
func (NopMetrics) RecordDomainCreated(context.Context)                                       {}
func (NopMetrics) RecordDomainRace(context.Context)                                          {}
func (NopMetrics) RecordStatusUpdate(context.Context, domain.DomainStatus)                   {}
