// Package query serves the read-only dashboard projections.
package query

import (
	"context"
	"fmt"

	"abusetriage/internal/domain"
	"abusetriage/internal/ports"
)

type Service struct {
	store ports.Store
}

func New(store ports.Store) *Service { return &Service{store: store} }

// ListReports returns every report, newest reporter timestamp first.
func (s *Service) ListReports(ctx context.Context) ([]domain.ReportSummary, error) {
	var out []domain.ReportSummary
	err := s.store.WithReadOnlyTransaction(ctx, func(tx ports.Tx) error {
		var err error
		out, err = tx.ListReports(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return out, nil
}

// GetDomainDetail returns the domain with its full report list and status history.
func (s *Service) GetDomainDetail(ctx context.Context, name string) (domain.DomainDetail, error) {
	name = domain.NormalizeName(name)

	var out domain.DomainDetail
	err := s.store.WithReadOnlyTransaction(ctx, func(tx ports.Tx) error {
		d, err := tx.GetDomainByName(ctx, name)
		if err != nil {
			return err
		}
		out.Domain = d
		if out.Reports, err = tx.ListReportsByDomain(ctx, d.ID); err != nil {
			return fmt.Errorf("list domain reports: %w", err)
		}
		if out.StatusHistory, err = tx.ListStatusHistory(ctx, d.ID); err != nil {
			return fmt.Errorf("list status history: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.DomainDetail{}, err
	}
	return out, nil
}
