package httpadapter

import (
	"abusetriage/internal/api"
	"abusetriage/internal/domain"
)

func toReportRead(s domain.ReportSummary) api.ReportRead {
	return api.ReportRead{
		ReportId:          s.ReportID,
		DomainName:        s.DomainName,
		AbuseType:         api.AbuseType(s.AbuseType),
		RiskLevel:         api.RiskLevel(s.RiskLevel),
		ReportedTimestamp: s.ReportedAt.UTC(),
	}
}

// toReportReads never returns nil so empty lists encode as [].
func toReportReads(in []domain.ReportSummary) []api.ReportRead {
	out := make([]api.ReportRead, 0, len(in))
	for _, s := range in {
		out = append(out, toReportRead(s))
	}
	return out
}

func toDomainDetail(d domain.DomainDetail) api.DomainDetail {
	history := make([]api.StatusHistoryRead, 0, len(d.StatusHistory))
	for _, h := range d.StatusHistory {
		history = append(history, api.StatusHistoryRead{
			StatusId:         h.ID,
			NewStatus:        api.ReviewStatus(h.NewStatus),
			ReviewerInitials: h.ReviewerInitials,
			Notes:            h.Notes,
			CreatedAt:        h.CreatedAt.UTC(),
		})
	}
	return api.DomainDetail{
		Domain: api.DomainRead{
			DomainId:          d.Domain.ID,
			DomainName:        d.Domain.Name,
			RegistrableDomain: d.Domain.RegistrableDomain,
			CurrentStatus:     api.DomainStatus(d.Domain.CurrentStatus),
			CreatedAt:         d.Domain.CreatedAt.UTC(),
			UpdatedAt:         d.Domain.UpdatedAt.UTC(),
		},
		Reports:       toReportReads(d.Reports),
		StatusHistory: history,
	}
}
