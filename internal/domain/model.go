package domain

import "time"

// Core domain models used internally. API types are generated from OpenAPI and
// sit in internal/api; keep these decoupled.

type Domain struct {
	ID                int64
	Name              string // normalized: trimmed, lowercase
	RegistrableDomain string // eTLD+1 of Name
	CurrentStatus     DomainStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Report struct {
	ID              int64
	DomainID        int64
	ReporterSource  string
	AbuseType       AbuseType
	ReportedAt      time.Time
	ConfidenceScore int
	RiskLevel       RiskLevel
	CreatedAt       time.Time
}

// ReportSummary is a report joined with the name of its domain.
type ReportSummary struct {
	ReportID   int64
	DomainName string
	AbuseType  AbuseType
	RiskLevel  RiskLevel
	ReportedAt time.Time
}

// StatusRecord is one row of a domain's status history.
type StatusRecord struct {
	ID               int64
	DomainID         int64
	DomainName       string
	NewStatus        DomainStatus
	ReviewerInitials string
	Notes            *string
	CreatedAt        time.Time
}

type DomainDetail struct {
	Domain        Domain
	Reports       []ReportSummary
	StatusHistory []StatusRecord
}

// ReportSubmission is an incoming abuse report before validation.
// Timestamp is the reporter's ISO 8601 date-time as sent. ConfidenceScore is
// nil when the reporter omitted it.
type ReportSubmission struct {
	DomainName      string
	ReporterSource  string
	AbuseType       string
	Timestamp       string
	ConfidenceScore *int
}

// StatusUpdate is a reviewer's triage decision before validation.
type StatusUpdate struct {
	DomainName       string
	NewStatus        string
	ReviewerInitials string
	Notes            *string
}
