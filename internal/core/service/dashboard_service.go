package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobportal/admin-console/internal/core/domain"
	"github.com/jobportal/admin-console/internal/core/ports"
)

// DashboardSummary aggregates the headline numbers shown on the landing
// screen.
type DashboardSummary struct {
	Customers        int64                 `json:"customers"`
	Employers        int64                 `json:"employers"`
	Jobs             int64                 `json:"jobs"`
	Orders           int64                 `json:"orders"`
	TotalAmount      float64               `json:"totalAmount"`
	TotalsByYear     []ports.YearTotal     `json:"totalAmountsByYear"`
	TotalsByEmployer []ports.EmployerTotal `json:"totalAmountsByEmployer"`
	TopEmployer      *ports.TopEmployer    `json:"topEmployer,omitempty"`
}

// DashboardService assembles the summary from the backend aggregate
// endpoints. Fetches run sequentially; they are read-only and independent.
type DashboardService struct {
	metrics ports.MetricsAPI
	log     zerolog.Logger
}

func NewDashboardService(metrics ports.MetricsAPI, log zerolog.Logger) *DashboardService {
	return &DashboardService{metrics: metrics, log: log}
}

func (s *DashboardService) Summary(ctx context.Context, token string) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	var err error
	if summary.Customers, err = s.metrics.CountCustomers(ctx, token); err != nil {
		return nil, &domain.LoadError{Entity: "dashboard", Cause: err}
	}
	if summary.Employers, err = s.metrics.CountEmployers(ctx, token); err != nil {
		return nil, &domain.LoadError{Entity: "dashboard", Cause: err}
	}
	if summary.Jobs, err = s.metrics.CountJobs(ctx, token); err != nil {
		return nil, &domain.LoadError{Entity: "dashboard", Cause: err}
	}
	if summary.Orders, err = s.metrics.CountOrders(ctx, token); err != nil {
		return nil, &domain.LoadError{Entity: "dashboard", Cause: err}
	}
	if summary.TotalAmount, err = s.metrics.TotalAmount(ctx, token); err != nil {
		return nil, &domain.LoadError{Entity: "dashboard", Cause: err}
	}
	if summary.TotalsByYear, err = s.metrics.TotalsByYear(ctx, token); err != nil {
		return nil, &domain.LoadError{Entity: "dashboard", Cause: err}
	}
	if summary.TotalsByEmployer, err = s.metrics.TotalsByEmployer(ctx, token); err != nil {
		return nil, &domain.LoadError{Entity: "dashboard", Cause: err}
	}

	// The top-employer panel is decorative; a miss renders an empty card.
	top, err := s.metrics.TopEmployer(ctx, token)
	if err != nil {
		s.log.Warn().Err(err).Msg("top employer aggregate unavailable")
	} else {
		summary.TopEmployer = top
	}

	return summary, nil
}
