package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"abusetriage/internal/domain"
	"abusetriage/internal/ports"
)

const meterName = "abusetriage"

// Metrics implements ports.Metrics using OpenTelemetry counters.
type Metrics struct {
	reportsSubmitted metric.Int64Counter
	domainsCreated   metric.Int64Counter
	domainRaces      metric.Int64Counter
	statusUpdates    metric.Int64Counter
}

var _ ports.Metrics = (*Metrics)(nil)

// NewMetrics creates the counters on provider, usually otel.GetMeterProvider().
func NewMetrics(provider metric.MeterProvider) (*Metrics, error) {
	meter := provider.Meter(meterName)

	reports, err := meter.Int64Counter(
		"reports_submitted_total",
		metric.WithDescription("Abuse reports accepted, by abuse type and risk level"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reports_submitted_total counter: %w", err)
	}
	domains, err := meter.Int64Counter(
		"domains_created_total",
		metric.WithDescription("Domains first seen through a report"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create domains_created_total counter: %w", err)
	}
	races, err := meter.Int64Counter(
		"domain_insert_races_total",
		metric.WithDescription("First reports that lost the domain insert to a concurrent submission"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create domain_insert_races_total counter: %w", err)
	}
	statuses, err := meter.Int64Counter(
		"status_updates_total",
		metric.WithDescription("Reviewer status decisions, by new status"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create status_updates_total counter: %w", err)
	}

	return &Metrics{
		reportsSubmitted: reports,
		domainsCreated:   domains,
		domainRaces:      races,
		statusUpdates:    statuses,
	}, nil
}

func (m *Metrics) RecordReportSubmitted(ctx context.Context, abuseType domain.AbuseType, risk domain.RiskLevel) {
	m.reportsSubmitted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("abuse_type", string(abuseType)),
		attribute.String("risk_level", string(risk)),
	))
}

func (m *Metrics) RecordDomainCreated(ctx context.Context) {
	m.domainsCreated.Add(ctx, 1)
}

func (m *Metrics) RecordDomainRace(ctx context.Context) {
	m.domainRaces.Add(ctx, 1)
}

func (m *Metrics) RecordStatusUpdate(ctx context.Context, status domain.DomainStatus) {
	m.statusUpdates.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
}
