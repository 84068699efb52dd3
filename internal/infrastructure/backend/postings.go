package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jobportal/admin-console/internal/core/domain"
)

// Job endpoints, including the boolean active-flag transition.

func (c *Client) ListJobs(ctx context.Context, token string) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.getJSON(ctx, token, "/job/all", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) DeleteJob(ctx context.Context, token string, id int64) error {
	return c.sendJSON(ctx, token, http.MethodDelete, fmt.Sprintf("/job/delete/%d", id), nil)
}

func (c *Client) SetJobActive(ctx context.Context, token string, id int64, active bool) error {
	return c.sendJSON(ctx, token, http.MethodPut, fmt.Sprintf("/job/update-status/%d?status=%t", id, active), nil)
}

// Order endpoints, including the detail view and the enumerated status
// transition.

func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.getJSON(ctx, token, "/order/all", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, token string, id int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.getJSON(ctx, token, fmt.Sprintf("/order/detail/%d", id), &order); err != nil {
		var serr *StatusError
		if errors.As(err, &serr) && serr.StatusCode == http.StatusNotFound {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, token string, id int64) error {
	return c.sendJSON(ctx, token, http.MethodDelete, fmt.Sprintf("/order/delete/%d", id), nil)
}

func (c *Client) SetOrderStatus(ctx context.Context, token string, id int64, status domain.OrderStatus) error {
	if !status.IsValid() {
		return domain.ErrInvalidOrderStatus
	}
	return c.sendJSON(ctx, token, http.MethodPut, fmt.Sprintf("/order/update-status/%d?status=%s", id, status), nil)
}
