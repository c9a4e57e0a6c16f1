// Package status applies reviewer triage decisions to domains.
package status

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"abusetriage/internal/domain"
	"abusetriage/internal/ports"
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

// UpdateStatus appends a history record and moves the domain's current status
// to match it in the same transaction. The domain row stays locked until
// commit, so concurrent updates leave the newest history record and the
// current status in agreement. Any current status may move to any reviewable
// status.
func (s *Service) UpdateStatus(ctx context.Context, in domain.StatusUpdate) (domain.StatusRecord, error) {
	ns, err := in.Validate()
	if err != nil {
		return domain.StatusRecord{}, err
	}

	var rec domain.StatusRecord
	err = s.store.WithTransaction(ctx, func(tx ports.Tx) error {
		d, err := tx.GetDomainForUpdate(ctx, ns.DomainName)
		if err != nil {
			return err
		}
		rec = domain.StatusRecord{
			DomainID:         d.ID,
			DomainName:       d.Name,
			NewStatus:        ns.NewStatus,
			ReviewerInitials: ns.ReviewerInitials,
			Notes:            ns.Notes,
		}
		if err := tx.InsertStatusRecord(ctx, &rec); err != nil {
			return fmt.Errorf("insert status record: %w", err)
		}
		if err := tx.UpdateDomainStatus(ctx, d.ID, ns.NewStatus); err != nil {
			return fmt.Errorf("update domain status: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.StatusRecord{}, err
	}

	s.metrics.RecordStatusUpdate(ctx, rec.NewStatus)
	s.log.WithFields(logrus.Fields{
		"domain":     rec.DomainName,
		"new_status": rec.NewStatus,
		"reviewer":   rec.ReviewerInitials,
	}).Info("domain status updated")
	return rec, nil
}
