package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"abusetriage/internal/domain"
)

// DomainRepository

const domainColumns = `domain_id, domain_name, registrable_domain, current_status, created_at, updated_at`

func (r *txRepo) GetDomainByName(ctx context.Context, name string) (domain.Domain, error) {
	return r.getDomain(ctx, `SELECT `+domainColumns+` FROM domains WHERE domain_name = $1`, name)
}

// GetDomainForUpdate locks the row until the transaction ends, so status
// updates on one domain apply one after another.
func (r *txRepo) GetDomainForUpdate(ctx context.Context, name string) (domain.Domain, error) {
	return r.getDomain(ctx, `SELECT `+domainColumns+` FROM domains WHERE domain_name = $1 FOR UPDATE`, name)
}

func (r *txRepo) getDomain(ctx context.Context, query, name string) (domain.Domain, error) {
	var (
		d      domain.Domain
		status string
	)
	err := r.tx.QueryRow(ctx, query, domain.NormalizeName(name)).
		Scan(&d.ID, &d.Name, &d.RegistrableDomain, &status, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Domain{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Domain{}, err
	}
	d.CurrentStatus = domain.DomainStatus(status)
	d.CreatedAt, d.UpdatedAt = d.CreatedAt.UTC(), d.UpdatedAt.UTC()
	return d, nil
}

// InsertDomain runs inside a savepoint so a unique violation leaves the
// enclosing transaction usable for the re-read.
func (r *txRepo) InsertDomain(ctx context.Context, d *domain.Domain) error {
	sp, err := r.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	err = sp.QueryRow(ctx, `
		INSERT INTO domains (domain_name, registrable_domain, current_status)
		VALUES ($1, $2, $3)
		RETURNING domain_id, created_at, updated_at
	`, d.Name, d.RegistrableDomain, string(d.CurrentStatus)).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		_ = sp.Rollback(ctx)
		if isUniqueViolation(err) {
			return domain.ErrDuplicateDomain
		}
		return err
	}
	d.CreatedAt, d.UpdatedAt = d.CreatedAt.UTC(), d.UpdatedAt.UTC()
	return sp.Commit(ctx)
}

func (r *txRepo) UpdateDomainStatus(ctx context.Context, domainID int64, status domain.DomainStatus) error {
	tag, err := r.tx.Exec(ctx, `
		UPDATE domains SET current_status = $2, updated_at = clock_timestamp() WHERE domain_id = $1
	`, domainID, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReportRepository

// InsertReport reads reported_timestamp back so the caller sees the value at
// the column's microsecond precision.
func (r *txRepo) InsertReport(ctx context.Context, rep *domain.Report) error {
	err := r.tx.QueryRow(ctx, `
		INSERT INTO reports (domain_id, reporter_source, abuse_type, reported_timestamp, confidence_score, risk_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING report_id, reported_timestamp, created_at
	`, rep.DomainID, rep.ReporterSource, string(rep.AbuseType), rep.ReportedAt.UTC(), rep.ConfidenceScore, string(rep.RiskLevel),
	).Scan(&rep.ID, &rep.ReportedAt, &rep.CreatedAt)
	if err != nil {
		return err
	}
	rep.ReportedAt, rep.CreatedAt = rep.ReportedAt.UTC(), rep.CreatedAt.UTC()
	return nil
}

const reportSummaryQuery = `
	SELECT r.report_id, d.domain_name, r.abuse_type, r.risk_level, r.reported_timestamp
	FROM reports r
	JOIN domains d ON d.domain_id = r.domain_id
`

func (r *txRepo) ListReports(ctx context.Context) ([]domain.ReportSummary, error) {
	rows, err := r.tx.Query(ctx, reportSummaryQuery+`
		ORDER BY r.reported_timestamp DESC, r.report_id DESC
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanReportSummary)
}

func (r *txRepo) ListReportsByDomain(ctx context.Context, domainID int64) ([]domain.ReportSummary, error) {
	rows, err := r.tx.Query(ctx, reportSummaryQuery+`
		WHERE r.domain_id = $1
		ORDER BY r.reported_timestamp DESC, r.report_id DESC
	`, domainID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanReportSummary)
}

func scanReportSummary(row pgx.CollectableRow) (domain.ReportSummary, error) {
	var (
		s                domain.ReportSummary
		abuseType, level string
	)
	if err := row.Scan(&s.ReportID, &s.DomainName, &abuseType, &level, &s.ReportedAt); err != nil {
		return s, err
	}
	s.AbuseType = domain.AbuseType(abuseType)
	s.RiskLevel = domain.RiskLevel(level)
	s.ReportedAt = s.ReportedAt.UTC()
	return s, nil
}

// StatusHistoryRepository

func (r *txRepo) InsertStatusRecord(ctx context.Context, rec *domain.StatusRecord) error {
	err := r.tx.QueryRow(ctx, `
		INSERT INTO domain_status_history (domain_id, new_status, reviewer_initials, notes, created_at)
		VALUES ($1, $2, $3, $4, clock_timestamp())
		RETURNING status_id, created_at
	`, rec.DomainID, string(rec.NewStatus), rec.ReviewerInitials, rec.Notes).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return nil
}

func (r *txRepo) ListStatusHistory(ctx context.Context, domainID int64) ([]domain.StatusRecord, error) {
	rows, err := r.tx.Query(ctx, `
		SELECT h.status_id, h.domain_id, d.domain_name, h.new_status, h.reviewer_initials, h.notes, h.created_at
		FROM domain_status_history h
		JOIN domains d ON d.domain_id = h.domain_id
		WHERE h.domain_id = $1
		ORDER BY h.created_at DESC, h.status_id DESC
	`, domainID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StatusRecord, error) {
		var (
			rec    domain.StatusRecord
			status string
		)
		if err := row.Scan(&rec.ID, &rec.DomainID, &rec.DomainName, &status, &rec.ReviewerInitials, &rec.Notes, &rec.CreatedAt); err != nil {
			return rec, err
		}
		rec.NewStatus = domain.DomainStatus(status)
		rec.CreatedAt = rec.CreatedAt.UTC()
		return rec, nil
	})
}
