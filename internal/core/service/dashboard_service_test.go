package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jobportal/admin-console/internal/core/domain"
	"github.com/jobportal/admin-console/internal/core/ports"
)

type stubMetrics struct {
	customers, employers, jobs, orders int64
	revenue                            float64
	totals                             []ports.YearTotal
	byEmployer                         []ports.EmployerTotal
	top                                *ports.TopEmployer

	countErr error
	topErr   error
}

func (m *stubMetrics) CountCustomers(ctx context.Context, token string) (int64, error) {
	return m.customers, m.countErr
}

func (m *stubMetrics) CountEmployers(ctx context.Context, token string) (int64, error) {
	return m.employers, nil
}

func (m *stubMetrics) CountJobs(ctx context.Context, token string) (int64, error) {
	return m.jobs, nil
}

func (m *stubMetrics) CountOrders(ctx context.Context, token string) (int64, error) {
	return m.orders, nil
}

func (m *stubMetrics) TotalAmount(ctx context.Context, token string) (float64, error) {
	return m.revenue, nil
}

func (m *stubMetrics) TotalsByYear(ctx context.Context, token string) ([]ports.YearTotal, error) {
	return m.totals, nil
}

func (m *stubMetrics) TotalsByEmployer(ctx context.Context, token string) ([]ports.EmployerTotal, error) {
	return m.byEmployer, nil
}

func (m *stubMetrics) TopEmployer(ctx context.Context, token string) (*ports.TopEmployer, error) {
	return m.top, m.topErr
}

func TestDashboardSummary(t *testing.T) {
	metrics := &stubMetrics{
		customers:  42,
		employers:  7,
		jobs:       120,
		orders:     15,
		revenue:    1999.50,
		totals:     []ports.YearTotal{{Year: 2025, TotalAmount: 1999.50}},
		byEmployer: []ports.EmployerTotal{{Name: "Acme Corp", TotalAmount: 850}},
		top:        &ports.TopEmployer{Name: "Acme Corp", TotalAmount: 850},
	}
	svc := NewDashboardService(metrics, discardLogger)

	summary, err := svc.Summary(context.Background(), "token")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.Customers != 42 || summary.Employers != 7 || summary.Jobs != 120 || summary.Orders != 15 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if summary.TotalAmount != 1999.50 {
		t.Errorf("unexpected revenue: %v", summary.TotalAmount)
	}
	if len(summary.TotalsByYear) != 1 || summary.TotalsByYear[0].Year != 2025 {
		t.Errorf("unexpected totals: %+v", summary.TotalsByYear)
	}
	if len(summary.TotalsByEmployer) != 1 || summary.TotalsByEmployer[0].Name != "Acme Corp" {
		t.Errorf("unexpected employer totals: %+v", summary.TotalsByEmployer)
	}
	if summary.TopEmployer == nil || summary.TopEmployer.Name != "Acme Corp" {
		t.Errorf("unexpected top employer: %+v", summary.TopEmployer)
	}
}

func TestDashboardSummaryCountFailure(t *testing.T) {
	metrics := &stubMetrics{countErr: errors.New("backend down")}
	svc := NewDashboardService(metrics, discardLogger)

	_, err := svc.Summary(context.Background(), "token")

	var lerr *domain.LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if lerr.Entity != "dashboard" {
		t.Errorf("expected dashboard entity, got %q", lerr.Entity)
	}
}

func TestDashboardSummaryTopEmployerMissIsNotFatal(t *testing.T) {
	metrics := &stubMetrics{topErr: errors.New("no orders yet")}
	svc := NewDashboardService(metrics, discardLogger)

	summary, err := svc.Summary(context.Background(), "token")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TopEmployer != nil {
		t.Errorf("expected nil top employer, got %+v", summary.TopEmployer)
	}
}
