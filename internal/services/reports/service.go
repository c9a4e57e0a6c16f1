// Package reports accepts abuse report submissions.
package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"abusetriage/internal/domain"
	"abusetriage/internal/ports"
	"abusetriage/internal/risk"
)

type Service struct {
	store   ports.Store
	metrics ports.Metrics
	log     logrus.FieldLogger
}

func New(store ports.Store, metrics ports.Metrics, log logrus.FieldLogger) *Service {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{store: store, metrics: metrics, log: log}
}

// resolution records how the report's domain was found.
type resolution int

const (
	resolvedExisting resolution = iota
	resolvedCreated
	resolvedAfterRace
)

// SubmitReport validates in, creates the domain on first sight and stores the
// classified report. Domain creation and report insertion commit together.
func (s *Service) SubmitReport(ctx context.Context, in domain.ReportSubmission) (domain.ReportSummary, error) {
	nr, err := in.Validate()
	if err != nil {
		return domain.ReportSummary{}, err
	}

	var (
		out domain.ReportSummary
		how resolution
	)
	err = s.store.WithTransaction(ctx, func(tx ports.Tx) error {
		d, res, err := getOrCreateDomain(ctx, tx, nr.DomainName)
		if err != nil {
			return err
		}
		how = res

		rep := domain.Report{
			DomainID:        d.ID,
			ReporterSource:  nr.ReporterSource,
			AbuseType:       nr.AbuseType,
			ReportedAt:      nr.ReportedAt,
			ConfidenceScore: nr.ConfidenceScore,
			RiskLevel:       risk.Classify(nr.DomainName, nr.AbuseType, nr.ConfidenceScore),
		}
		if err := tx.InsertReport(ctx, &rep); err != nil {
			return fmt.Errorf("insert report: %w", err)
		}
		out = domain.ReportSummary{
			ReportID:   rep.ID,
			DomainName: d.Name,
			AbuseType:  rep.AbuseType,
			RiskLevel:  rep.RiskLevel,
			ReportedAt: rep.ReportedAt,
		}
		return nil
	})
	if err != nil {
		return domain.ReportSummary{}, err
	}

	switch how {
	case resolvedCreated:
		s.metrics.RecordDomainCreated(ctx)
	case resolvedAfterRace:
		s.metrics.RecordDomainRace(ctx)
	}
	s.metrics.RecordReportSubmitted(ctx, out.AbuseType, out.RiskLevel)
	s.log.WithFields(logrus.Fields{
		"report_id":  out.ReportID,
		"domain":     out.DomainName,
		"abuse_type": out.AbuseType,
		"risk_level": out.RiskLevel,
		"new_domain": how == resolvedCreated,
	}).Info("report submitted")
	return out, nil
}

// getOrCreateDomain looks name up and inserts it as UNDER_REVIEW when absent.
// Losing the insert to a concurrent submission is not an error: the row the
// other transaction committed is read back and used.
func getOrCreateDomain(ctx context.Context, tx ports.Tx, name string) (domain.Domain, resolution, error) {
	d, err := tx.GetDomainByName(ctx, name)
	if err == nil {
		return d, resolvedExisting, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Domain{}, 0, fmt.Errorf("lookup domain: %w", err)
	}

	d = domain.Domain{
		Name:              name,
		RegistrableDomain: domain.RegistrableDomain(name),
		CurrentStatus:     domain.StatusUnderReview,
	}
	err = tx.InsertDomain(ctx, &d)
	switch {
	case err == nil:
		return d, resolvedCreated, nil
	case errors.Is(err, domain.ErrDuplicateDomain):
		d, err = tx.GetDomainByName(ctx, name)
		if err != nil {
			return domain.Domain{}, 0, fmt.Errorf("re-read domain after insert race: %w", err)
		}
		return d, resolvedAfterRace, nil
	default:
		return domain.Domain{}, 0, fmt.Errorf("insert domain: %w", err)
	}
}
