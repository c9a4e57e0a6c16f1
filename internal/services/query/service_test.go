package query

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"abusetriage/internal/adapters/sqlite"
	"abusetriage/internal/domain"
	"abusetriage/internal/ports"
)

func newTestStore(t *testing.T) ports.Store {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), log)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seed(t *testing.T, store ports.Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 9, 19, 8, 0, 0, 0, time.UTC)
	err := store.WithTransaction(ctx, func(tx ports.Tx) error {
		for i, name := range []string{"a.example.com", "b.example.com"} {
			d := domain.Domain{Name: name, RegistrableDomain: "example.com", CurrentStatus: domain.StatusUnderReview}
			if err := tx.InsertDomain(ctx, &d); err != nil {
				return err
			}
			rep := domain.Report{DomainID: d.ID, ReporterSource: "Netcraft", AbuseType: domain.AbuseSpam, ReportedAt: base.Add(time.Duration(i) * time.Hour), ConfidenceScore: 10, RiskLevel: domain.RiskLow}
			if err := tx.InsertReport(ctx, &rep); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestListReports(t *testing.T) {
	store := newTestStore(t)
	svc := New(store)

	got, err := svc.ListReports(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("empty store: %v, %v", got, err)
	}

	seed(t, store)
	got, err = svc.ListReports(context.Background())
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if len(got) != 2 || got[0].DomainName != "b.example.com" {
		t.Errorf("unexpected list %+v", got)
	}
}

func TestGetDomainDetail(t *testing.T) {
	store := newTestStore(t)
	seed(t, store)
	svc := New(store)

	got, err := svc.GetDomainDetail(context.Background(), "  A.Example.COM ")
	if err != nil {
		t.Fatalf("GetDomainDetail: %v", err)
	}
	if got.Domain.Name != "a.example.com" || len(got.Reports) != 1 || len(got.StatusHistory) != 0 {
		t.Errorf("unexpected detail %+v", got)
	}
	if got.Reports[0].DomainName != "a.example.com" {
		t.Errorf("report belongs to %s", got.Reports[0].DomainName)
	}
}

func TestGetDomainDetail_NotFound(t *testing.T) {
	svc := New(newTestStore(t))
	if _, err := svc.GetDomainDetail(context.Background(), "missing.example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
