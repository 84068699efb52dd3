package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/admin-console/internal/console"
	"github.com/jobportal/admin-console/internal/core/domain"
	"github.com/jobportal/admin-console/internal/core/ports"
)

// PostingsHandler serves the job table, including the activate/deactivate
// toggle — the one mutation applied in place instead of via reload.
type PostingsHandler struct {
	registry *console.Registry
	postings ports.PostingsAPI
}

func NewPostingsHandler(registry *console.Registry, postings ports.PostingsAPI) *PostingsHandler {
	return &PostingsHandler{registry: registry, postings: postings}
}

// ListJobs renders the job table view with category names joined in.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  false  "substring filter on name and recruitment details"
// @Param        page   query     int     false  "1-based page number"
// @Success      200    {object}  table.View[domain.Job]
// @Router       /admin/job/all [get]
func (h *PostingsHandler) ListJobs(c echo.Context) error {
	return listView(c, h.registry.Jobs(), "job")
}

func (h *PostingsHandler) DeleteJob(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return dispatch(c, h.registry.Jobs(), "job", "delete", func(ctx context.Context, token string) error {
		return h.postings.DeleteJob(ctx, token, id)
	})
}

// SetJobStatus flips the job's active flag. The backend confirms first; only
// then is the local record patched.
func (h *PostingsHandler) SetJobStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	active, err := strconv.ParseBool(c.QueryParam("status"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be true or false")
	}

	return dispatchInPlace(c, h.registry.Jobs(), "job", "status", c.Param("id"),
		func(ctx context.Context, token string) error {
			return h.postings.SetJobActive(ctx, token, id, active)
		},
		func(j *domain.Job) { j.Active = active },
	)
}
