package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"abusetriage/internal/domain"
)

// --- Domains ---

func (r *txRepo) GetDomainByName(ctx context.Context, name string) (domain.Domain, error) {
	var (
		d                    domain.Domain
		status               string
		createdAt, updatedAt string
	)
	err := r.tx.QueryRowContext(ctx,
		`SELECT domain_id, domain_name, registrable_domain, current_status, created_at, updated_at FROM domains WHERE domain_name = ?`,
		domain.NormalizeName(name),
	).Scan(&d.ID, &d.Name, &d.RegistrableDomain, &status, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Domain{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Domain{}, err
	}
	d.CurrentStatus = domain.DomainStatus(status)
	if d.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Domain{}, err
	}
	if d.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Domain{}, err
	}
	return d, nil
}

// GetDomainForUpdate needs no row lock: the single connection already
// serializes writers.
func (r *txRepo) GetDomainForUpdate(ctx context.Context, name string) (domain.Domain, error) {
	return r.GetDomainByName(ctx, name)
}

func (r *txRepo) InsertDomain(ctx context.Context, d *domain.Domain) error {
	if _, err := r.tx.ExecContext(ctx, `SAVEPOINT insert_domain`); err != nil {
		return fmt.Errorf("savepoint: %w", err)
	}
	now := time.Now().UTC()
	err := r.tx.QueryRowContext(ctx,
		`INSERT INTO domains (domain_name, registrable_domain, current_status, created_at, updated_at) VALUES (?, ?, ?, ?, ?) RETURNING domain_id`,
		d.Name, d.RegistrableDomain, string(d.CurrentStatus), formatTime(now), formatTime(now),
	).Scan(&d.ID)
	if err != nil {
		_, _ = r.tx.ExecContext(ctx, `ROLLBACK TO SAVEPOINT insert_domain`)
		_, _ = r.tx.ExecContext(ctx, `RELEASE SAVEPOINT insert_domain`)
		if isUniqueViolation(err) {
			return domain.ErrDuplicateDomain
		}
		return err
	}
	if _, err := r.tx.ExecContext(ctx, `RELEASE SAVEPOINT insert_domain`); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}
	d.CreatedAt, d.UpdatedAt = now, now
	return nil
}

func (r *txRepo) UpdateDomainStatus(ctx context.Context, domainID int64, status domain.DomainStatus) error {
	res, err := r.tx.ExecContext(ctx,
		`UPDATE domains SET current_status = ?, updated_at = ? WHERE domain_id = ?`,
		string(status), formatTime(time.Now()), domainID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Reports ---

func (r *txRepo) InsertReport(ctx context.Context, rep *domain.Report) error {
	now := time.Now().UTC()
	err := r.tx.QueryRowContext(ctx,
		`INSERT INTO reports (domain_id, reporter_source, abuse_type, reported_timestamp, confidence_score, risk_level, created_at) VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING report_id`,
		rep.DomainID, rep.ReporterSource, string(rep.AbuseType), formatTime(rep.ReportedAt), rep.ConfidenceScore, string(rep.RiskLevel), formatTime(now),
	).Scan(&rep.ID)
	if err != nil {
		return err
	}
	rep.ReportedAt = rep.ReportedAt.UTC()
	rep.CreatedAt = now
	return nil
}

const reportSummaryQuery = `SELECT r.report_id, d.domain_name, r.abuse_type, r.risk_level, r.reported_timestamp
	FROM reports r JOIN domains d ON d.domain_id = r.domain_id`

func (r *txRepo) ListReports(ctx context.Context) ([]domain.ReportSummary, error) {
	rows, err := r.tx.QueryContext(ctx, reportSummaryQuery+` ORDER BY r.reported_timestamp DESC, r.report_id DESC`)
	if err != nil {
		return nil, err
	}
	return scanReportSummaries(rows)
}

func (r *txRepo) ListReportsByDomain(ctx context.Context, domainID int64) ([]domain.ReportSummary, error) {
	rows, err := r.tx.QueryContext(ctx, reportSummaryQuery+` WHERE r.domain_id = ? ORDER BY r.reported_timestamp DESC, r.report_id DESC`, domainID)
	if err != nil {
		return nil, err
	}
	return scanReportSummaries(rows)
}

func scanReportSummaries(rows *sql.Rows) ([]domain.ReportSummary, error) {
	defer rows.Close()
	out := []domain.ReportSummary{}
	for rows.Next() {
		var (
			s                          domain.ReportSummary
			abuseType, level, reported string
		)
		if err := rows.Scan(&s.ReportID, &s.DomainName, &abuseType, &level, &reported); err != nil {
			return nil, err
		}
		s.AbuseType = domain.AbuseType(abuseType)
		s.RiskLevel = domain.RiskLevel(level)
		t, err := parseTime(reported)
		if err != nil {
			return nil, err
		}
		s.ReportedAt = t
		out = append(out, s)
	}
	return out, rows.Err()
}

// --- Status history ---

func (r *txRepo) InsertStatusRecord(ctx context.Context, rec *domain.StatusRecord) error {
	now := time.Now().UTC()
	err := r.tx.QueryRowContext(ctx,
		`INSERT INTO domain_status_history (domain_id, new_status, reviewer_initials, notes, created_at) VALUES (?, ?, ?, ?, ?) RETURNING status_id`,
		rec.DomainID, string(rec.NewStatus), rec.ReviewerInitials, rec.Notes, formatTime(now),
	).Scan(&rec.ID)
	if err != nil {
		return err
	}
	rec.CreatedAt = now
	return nil
}

func (r *txRepo) ListStatusHistory(ctx context.Context, domainID int64) ([]domain.StatusRecord, error) {
	rows, err := r.tx.QueryContext(ctx,
		`SELECT h.status_id, h.domain_id, d.domain_name, h.new_status, h.reviewer_initials, h.notes, h.created_at
		FROM domain_status_history h JOIN domains d ON d.domain_id = h.domain_id
		WHERE h.domain_id = ?
		ORDER BY h.created_at DESC, h.status_id DESC`, domainID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.StatusRecord{}
	for rows.Next() {
		var (
			rec               domain.StatusRecord
			status, createdAt string
			notes             sql.NullString
		)
		if err := rows.Scan(&rec.ID, &rec.DomainID, &rec.DomainName, &status, &rec.ReviewerInitials, &notes, &createdAt); err != nil {
			return nil, err
		}
		rec.NewStatus = domain.DomainStatus(status)
		if notes.Valid {
			rec.Notes = &notes.String
		}
		if rec.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
