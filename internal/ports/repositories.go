package ports

import (
	"context"

	"abusetriage/internal/domain"
)

// DomainRepository stores and fetches domains by normalized name.
type DomainRepository interface {
	// GetDomainByName returns domain.ErrNotFound when no row matches.
	GetDomainByName(ctx context.Context, name string) (domain.Domain, error)
	// GetDomainForUpdate is GetDomainByName that also holds a write lock on
	// the row until the transaction ends.
	GetDomainForUpdate(ctx context.Context, name string) (domain.Domain, error)
	// InsertDomain fills ID and timestamps on d. A name that already exists
	// yields domain.ErrDuplicateDomain and leaves the transaction usable.
	InsertDomain(ctx context.Context, d *domain.Domain) error
	UpdateDomainStatus(ctx context.Context, domainID int64, status domain.DomainStatus) error
}

// ReportRepository appends reports and lists them newest reporter timestamp first.
type ReportRepository interface {
	InsertReport(ctx context.Context, r *domain.Report) error
	ListReports(ctx context.Context) ([]domain.ReportSummary, error)
	ListReportsByDomain(ctx context.Context, domainID int64) ([]domain.ReportSummary, error)
}

// StatusHistoryRepository appends status records and lists them newest first.
type StatusHistoryRepository interface {
	InsertStatusRecord(ctx context.Context, rec *domain.StatusRecord) error
	ListStatusHistory(ctx context.Context, domainID int64) ([]domain.StatusRecord, error)
}

// Tx exposes every repository bound to one storage transaction.
type Tx interface {
	DomainRepository
	ReportRepository
	StatusHistoryRepository
}

// Store owns transaction boundaries. fn's error rolls the transaction back;
// a nil return commits it.
type Store interface {
	WithTransaction(ctx context.Context, fn func(tx Tx) error) error
	WithReadOnlyTransaction(ctx context.Context, fn func(tx Tx) error) error
	// Ping runs a trivial query against the store.
	Ping(ctx context.Context) error
	Close() error
}
