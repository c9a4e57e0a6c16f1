// Package risk derives the triage priority of an abuse report.
package risk

import (
	"strings"

	"abusetriage/internal/domain"
)

// Keywords that mark a domain name as impersonating a sensitive brand or flow.
var suspiciousKeywords = []string{"paypal", "secure", "login", "chase"}

const (
	highConfidence   = 80 // strictly above is HIGH
	mediumConfidence = 50 // at or above is MEDIUM
)

// Classify maps a validated report to a risk level. Rules are evaluated in
// order and the first match wins.
func Classify(domainName string, abuseType domain.AbuseType, confidence int) domain.RiskLevel {
	if confidence > highConfidence {
		return domain.RiskHigh
	}
	if abuseType == domain.AbusePhishing || abuseType == domain.AbuseMalware {
		return domain.RiskHigh
	}
	if hasSuspiciousKeyword(domainName) {
		return domain.RiskHigh
	}
	if confidence >= mediumConfidence {
		return domain.RiskMedium
	}
	return domain.RiskLow
}

func hasSuspiciousKeyword(name string) bool {
	name = strings.ToLower(name)
	for _, k := range suspiciousKeywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}
