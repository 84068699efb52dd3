package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/admin-console/internal/console"
	"github.com/jobportal/admin-console/internal/core/ports"
)

// DirectoryHandler serves the employer, customer and report tables.
// Employers and customers are deleted by email, their natural key in the
// backend contract.
type DirectoryHandler struct {
	registry  *console.Registry
	directory ports.DirectoryAPI
}

func NewDirectoryHandler(registry *console.Registry, directory ports.DirectoryAPI) *DirectoryHandler {
	return &DirectoryHandler{registry: registry, directory: directory}
}

// ListEmployers renders the employer table view.
//
// @Summary      List employers
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  false  "substring filter on name and email"
// @Param        page   query     int     false  "1-based page number"
// @Success      200    {object}  table.View[domain.Employer]
// @Router       /admin/employer/all [get]
func (h *DirectoryHandler) ListEmployers(c echo.Context) error {
	return listView(c, h.registry.Employers(), "employer")
}

func (h *DirectoryHandler) DeleteEmployer(c echo.Context) error {
	email := c.Param("email")
	return dispatch(c, h.registry.Employers(), "employer", "delete", func(ctx context.Context, token string) error {
		return h.directory.DeleteEmployer(ctx, token, email)
	})
}

func (h *DirectoryHandler) ListCustomers(c echo.Context) error {
	return listView(c, h.registry.Customers(), "customer")
}

func (h *DirectoryHandler) DeleteCustomer(c echo.Context) error {
	email := c.Param("email")
	return dispatch(c, h.registry.Customers(), "customer", "delete", func(ctx context.Context, token string) error {
		return h.directory.DeleteCustomer(ctx, token, email)
	})
}

func (h *DirectoryHandler) ListReports(c echo.Context) error {
	return listView(c, h.registry.Reports(), "report")
}

func (h *DirectoryHandler) DeleteReport(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return dispatch(c, h.registry.Reports(), "report", "delete", func(ctx context.Context, token string) error {
		return h.directory.DeleteReport(ctx, token, id)
	})
}
