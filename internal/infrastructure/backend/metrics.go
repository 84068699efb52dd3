package backend

import (
	"context"

	"github.com/jobportal/admin-console/internal/core/ports"
)

// Dashboard aggregate endpoints. Counts come back as a bare JSON number.

func (c *Client) count(ctx context.Context, token, path string) (int64, error) {
	var n int64
	if err := c.getJSON(ctx, token, path, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func (c *Client) CountCustomers(ctx context.Context, token string) (int64, error) {
	return c.count(ctx, token, "/customer/count")
}

func (c *Client) CountEmployers(ctx context.Context, token string) (int64, error) {
	return c.count(ctx, token, "/employer/count")
}

func (c *Client) CountJobs(ctx context.Context, token string) (int64, error) {
	return c.count(ctx, token, "/job/count")
}

func (c *Client) CountOrders(ctx context.Context, token string) (int64, error) {
	return c.count(ctx, token, "/order/count")
}

func (c *Client) TotalAmount(ctx context.Context, token string) (float64, error) {
	var total float64
	if err := c.getJSON(ctx, token, "/order/total-amounts", &total); err != nil {
		return 0, err
	}
	return total, nil
}

func (c *Client) TotalsByYear(ctx context.Context, token string) ([]ports.YearTotal, error) {
	var totals []ports.YearTotal
	if err := c.getJSON(ctx, token, "/order/total-amounts-by-year", &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

func (c *Client) TotalsByEmployer(ctx context.Context, token string) ([]ports.EmployerTotal, error) {
	var totals []ports.EmployerTotal
	if err := c.getJSON(ctx, token, "/order/total-amounts-by-employer", &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

func (c *Client) TopEmployer(ctx context.Context, token string) (*ports.TopEmployer, error) {
	var top ports.TopEmployer
	if err := c.getJSON(ctx, token, "/employer/top", &top); err != nil {
		return nil, err
	}
	return &top, nil
}
