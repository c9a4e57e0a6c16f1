package domain

// AbuseType is the category of abuse a reporter claims.
type AbuseType string

const (
	AbusePhishing AbuseType = "PHISHING"
	AbuseMalware  AbuseType = "MALWARE"
	AbuseBotnetC2 AbuseType = "BOTNET_C2"
	AbuseCSAM     AbuseType = "CSAM"
	AbuseSpam     AbuseType = "SPAM"
	AbuseOther    AbuseType = "OTHER"
)

var abuseTypes = []AbuseType{AbusePhishing, AbuseMalware, AbuseBotnetC2, AbuseCSAM, AbuseSpam, AbuseOther}

// AbuseTypes returns every accepted abuse type.
func AbuseTypes() []AbuseType { return append([]AbuseType(nil), abuseTypes...) }

func (a AbuseType) Valid() bool {
	for _, v := range abuseTypes {
		if a == v {
			return true
		}
	}
	return false
}

// RiskLevel is the triage priority derived for a report.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// DomainStatus is the current triage state of a domain.
type DomainStatus string

const (
	StatusOpen        DomainStatus = "OPEN"
	StatusUnderReview DomainStatus = "UNDER_REVIEW"
	StatusReviewed    DomainStatus = "REVIEWED"
	StatusEscalated   DomainStatus = "ESCALATED"
	StatusSuspended   DomainStatus = "SUSPENDED"
	StatusClosed      DomainStatus = "CLOSED"
)

func (s DomainStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusUnderReview, StatusReviewed, StatusEscalated, StatusSuspended, StatusClosed:
		return true
	}
	return false
}

// Reviewable reports whether s may be set through a reviewer status update.
// OPEN and UNDER_REVIEW are system assigned; CLOSED has no producing path yet.
func (s DomainStatus) Reviewable() bool {
	switch s {
	case StatusReviewed, StatusEscalated, StatusSuspended:
		return true
	}
	return false
}
