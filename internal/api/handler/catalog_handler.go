package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/admin-console/internal/console"
	"github.com/jobportal/admin-console/internal/core/ports"
)

// CatalogHandler serves the category, service-pack and role tables.
type CatalogHandler struct {
	registry *console.Registry
	catalog  ports.CatalogAPI
}

func NewCatalogHandler(registry *console.Registry, catalog ports.CatalogAPI) *CatalogHandler {
	return &CatalogHandler{registry: registry, catalog: catalog}
}

type categoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required"`
	Description  string `json:"description"  validate:"required"`
}

type servicePackRequest struct {
	ServiceName    string  `json:"serviceName"    validate:"required"`
	Price          float64 `json:"price"          validate:"required,gt=0"`
	Quantity       int     `json:"quantity"       validate:"required,gt=0"`
	ValidityPeriod int     `json:"validityPeriod" validate:"required,gt=0"`
	Description    string  `json:"description"    validate:"required"`
}

type roleRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// --- Categories ---

// ListCategories renders the category table view.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  false  "substring filter on name and description"
// @Param        page   query     int     false  "1-based page number"
// @Success      200    {object}  table.View[domain.Category]
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /admin/category/all [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return listView(c, h.registry.Categories(), "category")
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return dispatch(c, h.registry.Categories(), "category", "create", func(ctx context.Context, token string) error {
		return h.catalog.CreateCategory(ctx, token, ports.CategoryInput(req))
	})
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return dispatch(c, h.registry.Categories(), "category", "update", func(ctx context.Context, token string) error {
		return h.catalog.UpdateCategory(ctx, token, id, ports.CategoryInput(req))
	})
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return dispatch(c, h.registry.Categories(), "category", "delete", func(ctx context.Context, token string) error {
		return h.catalog.DeleteCategory(ctx, token, id)
	})
}

// --- Service packs ---

func (h *CatalogHandler) ListServicePacks(c echo.Context) error {
	return listView(c, h.registry.ServicePacks(), "service")
}

func (h *CatalogHandler) CreateServicePack(c echo.Context) error {
	var req servicePackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return dispatch(c, h.registry.ServicePacks(), "service", "create", func(ctx context.Context, token string) error {
		return h.catalog.CreateServicePack(ctx, token, ports.ServicePackInput(req))
	})
}

func (h *CatalogHandler) UpdateServicePack(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req servicePackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return dispatch(c, h.registry.ServicePacks(), "service", "update", func(ctx context.Context, token string) error {
		return h.catalog.UpdateServicePack(ctx, token, id, ports.ServicePackInput(req))
	})
}

func (h *CatalogHandler) DeleteServicePack(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return dispatch(c, h.registry.ServicePacks(), "service", "delete", func(ctx context.Context, token string) error {
		return h.catalog.DeleteServicePack(ctx, token, id)
	})
}

// --- Roles ---

func (h *CatalogHandler) ListRoles(c echo.Context) error {
	return listView(c, h.registry.Roles(), "role")
}

func (h *CatalogHandler) CreateRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return dispatch(c, h.registry.Roles(), "role", "create", func(ctx context.Context, token string) error {
		return h.catalog.CreateRole(ctx, token, ports.RoleInput(req))
	})
}

func (h *CatalogHandler) DeleteRole(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return dispatch(c, h.registry.Roles(), "role", "delete", func(ctx context.Context, token string) error {
		return h.catalog.DeleteRole(ctx, token, id)
	})
}
