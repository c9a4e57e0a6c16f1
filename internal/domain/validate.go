package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
)

const (
	MaxDomainNameLen     = 255
	MaxReporterSourceLen = 100
	MaxInitialsLen       = 8
	MaxNotesLen          = 500
	MinConfidence        = 0
	MaxConfidence        = 100
)

// NormalizeName returns the lookup key for a domain name.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// RegistrableDomain returns the eTLD+1 of a normalized name, or the name
// itself when the public suffix list cannot place it.
func RegistrableDomain(name string) string {
	registrable, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		return name
	}
	return registrable
}

// timestampLayouts are the ISO 8601 forms accepted for report timestamps.
// Layouts without an offset are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// ParseTimestamp parses s with the accepted layouts and returns it in UTC,
// truncated to the microsecond precision the stores keep.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Microsecond), true
		}
	}
	return time.Time{}, false
}

// NewReport is a validated report submission ready to persist.
type NewReport struct {
	DomainName      string
	ReporterSource  string
	AbuseType       AbuseType
	ReportedAt      time.Time
	ConfidenceScore int
}

// Validate normalizes s and checks every field, collecting all problems.
func (s ReportSubmission) Validate() (NewReport, error) {
	var verr ValidationError
	out := NewReport{
		DomainName:     NormalizeName(s.DomainName),
		ReporterSource: strings.TrimSpace(s.ReporterSource),
		AbuseType:      AbuseType(s.AbuseType),
	}

	switch {
	case out.DomainName == "":
		verr.add("domain_name", "is required")
	case !strings.Contains(out.DomainName, "."):
		verr.add("domain_name", "must contain a dot")
	case utf8.RuneCountInString(out.DomainName) > MaxDomainNameLen:
		verr.add("domain_name", fmt.Sprintf("must be at most %d characters", MaxDomainNameLen))
	}

	switch n := utf8.RuneCountInString(out.ReporterSource); {
	case n == 0:
		verr.add("reporter_source", "is required")
	case n > MaxReporterSourceLen:
		verr.add("reporter_source", fmt.Sprintf("must be at most %d characters", MaxReporterSourceLen))
	}

	if !out.AbuseType.Valid() {
		verr.add("abuse_type", fmt.Sprintf("must be one of %s", joinAbuseTypes()))
	}

	if ts := strings.TrimSpace(s.Timestamp); ts == "" {
		verr.add("timestamp", "is required")
	} else if t, ok := ParseTimestamp(ts); !ok {
		verr.add("timestamp", "must be an ISO 8601 date-time")
	} else {
		out.ReportedAt = t
	}

	switch {
	case s.ConfidenceScore == nil:
		verr.add("confidence_score", "is required")
	case *s.ConfidenceScore < MinConfidence || *s.ConfidenceScore > MaxConfidence:
		verr.add("confidence_score", fmt.Sprintf("must be between %d and %d", MinConfidence, MaxConfidence))
	default:
		out.ConfidenceScore = *s.ConfidenceScore
	}

	return out, verr.orNil()
}

// NewStatus is a validated status update.
type NewStatus struct {
	DomainName       string
	NewStatus        DomainStatus
	ReviewerInitials string
	Notes            *string
}

// Validate normalizes u and checks every field, collecting all problems.
func (u StatusUpdate) Validate() (NewStatus, error) {
	var verr ValidationError
	out := NewStatus{
		DomainName:       NormalizeName(u.DomainName),
		NewStatus:        DomainStatus(u.NewStatus),
		ReviewerInitials: strings.TrimSpace(u.ReviewerInitials),
		Notes:            u.Notes,
	}

	if !out.NewStatus.Reviewable() {
		verr.add("new_status", "must be one of REVIEWED, ESCALATED, SUSPENDED")
	}

	switch n := utf8.RuneCountInString(out.ReviewerInitials); {
	case n == 0:
		verr.add("reviewer_initials", "is required")
	case n > MaxInitialsLen:
		verr.add("reviewer_initials", fmt.Sprintf("must be at most %d characters", MaxInitialsLen))
	}

	if out.Notes != nil && utf8.RuneCountInString(*out.Notes) > MaxNotesLen {
		verr.add("notes", fmt.Sprintf("must be at most %d characters", MaxNotesLen))
	}

	return out, verr.orNil()
}

func joinAbuseTypes() string {
	names := make([]string, len(abuseTypes))
	for i, a := range abuseTypes {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}
