package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jobportal/admin-console/internal/core/domain"
)

// Employer endpoints. Deletion is keyed by email, the backend's natural key
// for people-shaped records.

func (c *Client) ListEmployers(ctx context.Context, token string) ([]domain.Employer, error) {
	var employers []domain.Employer
	if err := c.getJSON(ctx, token, "/employer/list-employer", &employers); err != nil {
		return nil, err
	}
	return employers, nil
}

func (c *Client) DeleteEmployer(ctx context.Context, token string, email string) error {
	return c.sendJSON(ctx, token, http.MethodDelete, "/employer/delete/"+url.PathEscape(email), nil)
}

// Customer endpoints.

func (c *Client) ListCustomers(ctx context.Context, token string) ([]domain.Customer, error) {
	var customers []domain.Customer
	if err := c.getJSON(ctx, token, "/customer/all", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, token string, email string) error {
	return c.sendJSON(ctx, token, http.MethodDelete, "/customer/delete/"+url.PathEscape(email), nil)
}

// Address reference collection, joined into customers client-side.

func (c *Client) ListAddresses(ctx context.Context, token string) ([]domain.Address, error) {
	var addresses []domain.Address
	if err := c.getJSON(ctx, token, "/address/all", &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// Report endpoints.

func (c *Client) ListReports(ctx context.Context, token string) ([]domain.Report, error) {
	var reports []domain.Report
	if err := c.getJSON(ctx, token, "/report/all", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) DeleteReport(ctx context.Context, token string, id int64) error {
	return c.sendJSON(ctx, token, http.MethodDelete, fmt.Sprintf("/report/delete/%d", id), nil)
}
