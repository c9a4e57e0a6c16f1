package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"abusetriage/internal/adapters/sqlite"
	"abusetriage/internal/api"
	"abusetriage/internal/domain"
	"abusetriage/internal/services/query"
	"abusetriage/internal/services/reports"
	"abusetriage/internal/services/status"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	return newTestServer(t).Routes()
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := quietLogger()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), log)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(
		reports.New(store, nil, log),
		status.New(store, nil, log),
		query.New(store),
		store,
		log,
	)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func reportBody(domainName, abuseType string, confidence int, ts string) string {
	b, _ := json.Marshal(map[string]any{
		"domain_name":      domainName,
		"reporter_source":  "Netcraft",
		"abuse_type":       abuseType,
		"timestamp":        ts,
		"confidence_score": confidence,
	})
	return string(b)
}

func TestSubmitReport_PhishingIsHighDespiteLowConfidence(t *testing.T) {
	h := newTestHandler(t)
	rec := do(t, h, http.MethodPost, "/report", reportBody("Verify-PayPal-Online.ONLINE", "PHISHING", 10, "2025-09-19T10:30:00+02:00"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	got := decode[api.ReportRead](t, rec)
	if got.RiskLevel != api.RiskLevelHIGH {
		t.Errorf("risk_level = %s, want HIGH", got.RiskLevel)
	}
	if got.DomainName != "verify-paypal-online.online" {
		t.Errorf("domain_name = %q", got.DomainName)
	}
	if got.ReportId == 0 || got.AbuseType != api.AbuseTypePHISHING {
		t.Errorf("unexpected report %+v", got)
	}
	if got.ReportedTimestamp.Hour() != 8 || got.ReportedTimestamp.Location().String() != "UTC" {
		t.Errorf("reported_timestamp = %v, want 08:30 UTC", got.ReportedTimestamp)
	}
}

func TestSubmitReport_KeywordRuleFiresBeforeMedium(t *testing.T) {
	h := newTestHandler(t)
	rec := do(t, h, http.MethodPost, "/report", reportBody("support-chase-online.online", "SPAM", 55, "2025-09-19T08:30:00Z"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := decode[api.ReportRead](t, rec); got.RiskLevel != api.RiskLevelHIGH {
		t.Errorf("risk_level = %s, want HIGH", got.RiskLevel)
	}
}

func TestSubmitReport_AcceptsISO8601Layouts(t *testing.T) {
	h := newTestHandler(t)
	want := time.Date(2025, 9, 19, 8, 30, 0, 0, time.UTC)
	for _, ts := range []string{"2025-09-19T08:30Z", "2025-09-19T08:30:00", "2025-09-19T10:30+02:00"} {
		rec := do(t, h, http.MethodPost, "/report", reportBody("layouts.example.com", "SPAM", 5, ts))
		if rec.Code != http.StatusCreated {
			t.Fatalf("%s: status = %d, body = %s", ts, rec.Code, rec.Body)
		}
		if got := decode[api.ReportRead](t, rec); !got.ReportedTimestamp.Equal(want) {
			t.Errorf("%s: reported_timestamp = %v, want %v", ts, got.ReportedTimestamp, want)
		}
	}
}

func TestSubmitReport_EchoesStoredPrecision(t *testing.T) {
	h := newTestHandler(t)
	rec := do(t, h, http.MethodPost, "/report", reportBody("precise.example.com", "SPAM", 5, "2025-09-19T08:30:00.123456789Z"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	created := decode[api.ReportRead](t, rec)
	if ns := created.ReportedTimestamp.Nanosecond(); ns != 123456000 {
		t.Errorf("reported_timestamp nanoseconds = %d, want 123456000", ns)
	}
	detail := decode[api.DomainDetail](t, do(t, h, http.MethodGet, "/report/precise.example.com", ""))
	if len(detail.Reports) != 1 || !detail.Reports[0].ReportedTimestamp.Equal(created.ReportedTimestamp) {
		t.Errorf("stored report %+v does not match created %v", detail.Reports, created.ReportedTimestamp)
	}
}

func TestSubmitReport_Validation(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"domain without dot", reportBody("localhost", "SPAM", 10, "2025-09-19T08:30:00Z"), "domain_name"},
		{"confidence above range", reportBody("a.example.com", "SPAM", 101, "2025-09-19T08:30:00Z"), "confidence_score"},
		{"confidence below range", reportBody("a.example.com", "SPAM", -1, "2025-09-19T08:30:00Z"), "confidence_score"},
		{"unknown abuse type", reportBody("a.example.com", "FRAUD", 10, "2025-09-19T08:30:00Z"), "abuse_type"},
		{"missing confidence", `{"domain_name":"a.example.com","reporter_source":"x","abuse_type":"SPAM","timestamp":"2025-09-19T08:30:00Z"}`, "confidence_score"},
		{"missing timestamp", `{"domain_name":"a.example.com","reporter_source":"x","abuse_type":"SPAM","confidence_score":5}`, "timestamp"},
		{"confidence wrong type", `{"domain_name":"a.example.com","reporter_source":"x","abuse_type":"SPAM","timestamp":"2025-09-19T08:30:00Z","confidence_score":"high"}`, "confidence_score"},
		{"bad timestamp", `{"domain_name":"a.example.com","reporter_source":"x","abuse_type":"SPAM","timestamp":"yesterday","confidence_score":5}`, "timestamp"},
		{"malformed json", `{"domain_name":`, "body"},
		{"empty body", ``, "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/report", tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
			}
			got := decode[api.HTTPValidationError](t, rec)
			found := false
			for _, d := range got.Detail {
				if d.Field == tt.field && d.Message != "" {
					found = true
				}
			}
			if !found {
				t.Errorf("no error for field %s in %+v", tt.field, got.Detail)
			}
		})
	}

	rec := do(t, h, http.MethodGet, "/reports", "")
	if got := decode[[]api.ReportRead](t, rec); len(got) != 0 {
		t.Errorf("rejected reports were stored: %+v", got)
	}
}

func TestSubmitReport_SameDomainDeduplicated(t *testing.T) {
	h := newTestHandler(t)
	for _, name := range []string{"evil.example.com", "EVIL.example.com "} {
		if rec := do(t, h, http.MethodPost, "/report", reportBody(name, "SPAM", 20, "2025-09-19T08:30:00Z")); rec.Code != http.StatusCreated {
			t.Fatalf("submit %q: status = %d, body = %s", name, rec.Code, rec.Body)
		}
	}

	rec := do(t, h, http.MethodGet, "/report/Evil.Example.COM", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	got := decode[api.DomainDetail](t, rec)
	if got.Domain.DomainName != "evil.example.com" || got.Domain.CurrentStatus != api.DomainStatusUNDERREVIEW {
		t.Errorf("unexpected domain %+v", got.Domain)
	}
	if got.Domain.RegistrableDomain != "example.com" {
		t.Errorf("registrable_domain = %q", got.Domain.RegistrableDomain)
	}
	if len(got.Reports) != 2 {
		t.Errorf("got %d reports, want 2", len(got.Reports))
	}
	if got.StatusHistory == nil || len(got.StatusHistory) != 0 {
		t.Errorf("status_history = %+v, want empty list", got.StatusHistory)
	}
}

func TestListReports_NewestFirst(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/reports", "")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("empty list: status = %d, body = %s", rec.Code, rec.Body)
	}

	for _, ts := range []string{"2025-09-18T08:00:00Z", "2025-09-20T08:00:00Z", "2025-09-19T08:00:00Z"} {
		if rec := do(t, h, http.MethodPost, "/report", reportBody("a.example.com", "OTHER", 90, ts)); rec.Code != http.StatusCreated {
			t.Fatalf("submit: %d %s", rec.Code, rec.Body)
		}
	}
	got := decode[[]api.ReportRead](t, do(t, h, http.MethodGet, "/reports", ""))
	if len(got) != 3 {
		t.Fatalf("got %d reports", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].ReportedTimestamp.After(got[i-1].ReportedTimestamp) {
			t.Errorf("reports not newest first: %v before %v", got[i-1].ReportedTimestamp, got[i].ReportedTimestamp)
		}
	}
	if got[0].ReportedTimestamp.Day() != 20 {
		t.Errorf("first report day = %d, want 20", got[0].ReportedTimestamp.Day())
	}
}

func TestGetDomainDetail_NotFound(t *testing.T) {
	h := newTestHandler(t)
	rec := do(t, h, http.MethodGet, "/report/unknown.example.com", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[api.ErrorMessage](t, rec); got.Detail != "Domain not found" {
		t.Errorf("detail = %q", got.Detail)
	}
}

func TestUpdateDomainStatus(t *testing.T) {
	h := newTestHandler(t)
	if rec := do(t, h, http.MethodPost, "/report", reportBody("support-chase-online.online", "SPAM", 55, "2025-09-19T08:30:00Z")); rec.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body)
	}

	rec := do(t, h, http.MethodPost, "/domains/Support-Chase-Online.online/status", `{"new_status":"REVIEWED","reviewer_initials":"SD","notes":"note"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	resp := decode[api.StatusUpdateResponse](t, rec)
	if resp.DomainName != "support-chase-online.online" || resp.NewStatus != api.ReviewStatusREVIEWED || resp.ReviewerInitials != "SD" || resp.Notes == nil || *resp.Notes != "note" {
		t.Errorf("unexpected response %+v", resp)
	}

	rec = do(t, h, http.MethodPost, "/domains/support-chase-online.online/status", `{"new_status":"SUSPENDED","reviewer_initials":"AB"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("second update: status = %d, body = %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"notes":null`) {
		t.Errorf("notes should be null when omitted: %s", rec.Body)
	}

	detail := decode[api.DomainDetail](t, do(t, h, http.MethodGet, "/report/support-chase-online.online", ""))
	if detail.Domain.CurrentStatus != api.DomainStatusSUSPENDED {
		t.Errorf("current_status = %s, want SUSPENDED", detail.Domain.CurrentStatus)
	}
	if len(detail.StatusHistory) != 2 {
		t.Fatalf("got %d history rows, want 2", len(detail.StatusHistory))
	}
	if detail.StatusHistory[0].NewStatus != api.ReviewStatusSUSPENDED || detail.StatusHistory[1].NewStatus != api.ReviewStatusREVIEWED {
		t.Errorf("history not newest first: %+v", detail.StatusHistory)
	}
}

func TestUpdateDomainStatus_UnknownDomain(t *testing.T) {
	h := newTestHandler(t)
	rec := do(t, h, http.MethodPost, "/domains/unknown.example.com/status", `{"new_status":"ESCALATED","reviewer_initials":"SD"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if got := decode[api.ErrorMessage](t, rec); got.Detail != "Domain not found" {
		t.Errorf("detail = %q", got.Detail)
	}
}

func TestUpdateDomainStatus_Validation(t *testing.T) {
	h := newTestHandler(t)
	if rec := do(t, h, http.MethodPost, "/report", reportBody("a.example.com", "SPAM", 5, "2025-09-19T08:30:00Z")); rec.Code != http.StatusCreated {
		t.Fatalf("submit: %d %s", rec.Code, rec.Body)
	}
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"closed not allowed", `{"new_status":"CLOSED","reviewer_initials":"SD"}`, "new_status"},
		{"open not allowed", `{"new_status":"OPEN","reviewer_initials":"SD"}`, "new_status"},
		{"initials too long", `{"new_status":"REVIEWED","reviewer_initials":"ABCDEFGHI"}`, "reviewer_initials"},
		{"initials missing", `{"new_status":"REVIEWED"}`, "reviewer_initials"},
		{"notes too long", `{"new_status":"REVIEWED","reviewer_initials":"SD","notes":"` + strings.Repeat("n", domain.MaxNotesLen+1) + `"}`, "notes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/domains/a.example.com/status", tt.body)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
			}
			got := decode[api.HTTPValidationError](t, rec)
			if len(got.Detail) == 0 || got.Detail[0].Field != tt.field {
				t.Errorf("detail = %+v, want field %s", got.Detail, tt.field)
			}
		})
	}

	detail := decode[api.DomainDetail](t, do(t, h, http.MethodGet, "/report/a.example.com", ""))
	if detail.Domain.CurrentStatus != api.DomainStatusUNDERREVIEW || len(detail.StatusHistory) != 0 {
		t.Errorf("rejected updates changed the domain: %+v", detail)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || decode[api.Health](t, rec).Status != "ok" {
		t.Errorf("/health: %d %s", rec.Code, rec.Body)
	}

	rec = do(t, h, http.MethodGet, "/health/db", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("/health/db: %d %s", rec.Code, rec.Body)
	}
	if got := decode[api.DBHealth](t, rec); got.Status != "ok" || got.Db != "connected" {
		t.Errorf("/health/db body = %+v", got)
	}
}

type failingPing struct{}

func (failingPing) Ping(context.Context) error { return errors.New("connection refused") }

type failingQueries struct{}

func (failingQueries) ListReports(context.Context) ([]domain.ReportSummary, error) {
	return nil, errors.New("pq: relation reports does not exist")
}

func (failingQueries) GetDomainDetail(context.Context, string) (domain.DomainDetail, error) {
	panic("unexpected call")
}

func TestHealthDB_Unavailable(t *testing.T) {
	h := New(nil, nil, nil, failingPing{}, quietLogger()).Routes()
	rec := do(t, h, http.MethodGet, "/health/db", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[api.DBHealth](t, rec); got.Status != "error" || got.Db != "unavailable" {
		t.Errorf("body = %+v", got)
	}
}

func TestInternalErrorsAreNotExposed(t *testing.T) {
	h := New(nil, nil, failingQueries{}, failingPing{}, quietLogger()).Routes()

	rec := do(t, h, http.MethodGet, "/reports", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "relation") {
		t.Errorf("internal detail leaked: %s", rec.Body)
	}
	if got := decode[api.ErrorMessage](t, rec); got.Detail != "Internal Server Error" {
		t.Errorf("detail = %q", got.Detail)
	}

	rec = do(t, h, http.MethodGet, "/report/a.example.com", "")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("panic: status = %d", rec.Code)
	}
}
