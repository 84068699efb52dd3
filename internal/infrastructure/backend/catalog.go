package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobportal/admin-console/internal/core/domain"
	"github.com/jobportal/admin-console/internal/core/ports"
)

// Category endpoints.

func (c *Client) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.getJSON(ctx, token, "/admin/category/all", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, input ports.CategoryInput) error {
	return c.postForStatus(ctx, token, "/admin/category/create", input)
}

func (c *Client) UpdateCategory(ctx context.Context, token string, id int64, input ports.CategoryInput) error {
	return c.sendJSON(ctx, token, http.MethodPut, fmt.Sprintf("/admin/category/update/%d", id), input)
}

func (c *Client) DeleteCategory(ctx context.Context, token string, id int64) error {
	return c.sendJSON(ctx, token, http.MethodDelete, fmt.Sprintf("/admin/category/delete/%d", id), nil)
}

// Service-pack endpoints.

func (c *Client) ListServicePacks(ctx context.Context, token string) ([]domain.ServicePack, error) {
	var packs []domain.ServicePack
	if err := c.getJSON(ctx, token, "/admin/service/all", &packs); err != nil {
		return nil, err
	}
	return packs, nil
}

func (c *Client) CreateServicePack(ctx context.Context, token string, input ports.ServicePackInput) error {
	return c.postForStatus(ctx, token, "/admin/service/create", input)
}

func (c *Client) UpdateServicePack(ctx context.Context, token string, id int64, input ports.ServicePackInput) error {
	return c.sendJSON(ctx, token, http.MethodPut, fmt.Sprintf("/admin/service/update/%d", id), input)
}

func (c *Client) DeleteServicePack(ctx context.Context, token string, id int64) error {
	return c.sendJSON(ctx, token, http.MethodDelete, fmt.Sprintf("/admin/service/delete/%d", id), nil)
}

// Role endpoints.

func (c *Client) ListRoles(ctx context.Context, token string) ([]domain.Role, error) {
	var roles []domain.Role
	if err := c.getJSON(ctx, token, "/admin/roles/all", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) CreateRole(ctx context.Context, token string, input ports.RoleInput) error {
	return c.postForStatus(ctx, token, "/admin/roles/create", input)
}

func (c *Client) DeleteRole(ctx context.Context, token string, id int64) error {
	return c.sendJSON(ctx, token, http.MethodDelete, fmt.Sprintf("/admin/roles/delete/%d", id), nil)
}
