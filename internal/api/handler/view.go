package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/admin-console/internal/api/metrics"
	"github.com/jobportal/admin-console/internal/core/table"
)

// activate runs the controller's session guard and initial load for this
// request, recording load metrics.
func activate[T any](c echo.Context, ctrl *table.Controller[T], entity string) error {
	token, err := sessionToken(c)
	if err != nil {
		return err
	}

	start := time.Now()
	err = ctrl.Activate(c.Request().Context(), token)
	metrics.CollectionLoadDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CollectionLoadsTotal.WithLabelValues(entity, "error").Inc()
		return err
	}
	metrics.CollectionLoadsTotal.WithLabelValues(entity, "ok").Inc()
	return nil
}

// listView activates the controller, applies the query/page parameters and
// renders the table view. SetQuery resets the page to 1, so the explicit page
// parameter is applied afterwards and clamped by the controller.
func listView[T any](c echo.Context, ctrl *table.Controller[T], entity string) error {
	if err := activate(c, ctrl, entity); err != nil {
		return err
	}

	ctrl.SetQuery(c.QueryParam("query"))
	if p := c.QueryParam("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			ctrl.GoToPage(n)
		}
	}

	return c.JSON(http.StatusOK, ctrl.Snapshot())
}

// dispatch activates the controller, runs one mutation under its in-flight
// guard, and renders the refreshed view. A failed mutation leaves the
// collection untouched; its notification rides along in the snapshot.
func dispatch[T any](c echo.Context, ctrl *table.Controller[T], entity, op string, fn func(ctx context.Context, token string) error) error {
	if err := activate(c, ctrl, entity); err != nil {
		return err
	}

	token, _ := c.Get("token").(string)
	err := ctrl.Mutate(c.Request().Context(), op, func(ctx context.Context) error {
		return fn(ctx, token)
	})
	if err != nil {
		metrics.MutationsTotal.WithLabelValues(entity, op, "error").Inc()
	} else {
		metrics.MutationsTotal.WithLabelValues(entity, op, "ok").Inc()
	}

	return c.JSON(http.StatusOK, ctrl.Snapshot())
}

// dispatchInPlace is dispatch's sibling for status transitions: on success
// only the matching record is patched locally, no reload.
func dispatchInPlace[T any](c echo.Context, ctrl *table.Controller[T], entity, op, id string, fn func(ctx context.Context, token string) error, patch func(*T)) error {
	if err := activate(c, ctrl, entity); err != nil {
		return err
	}

	token, _ := c.Get("token").(string)
	err := ctrl.MutateInPlace(c.Request().Context(), op, id, func(ctx context.Context) error {
		return fn(ctx, token)
	}, patch)
	if err != nil {
		metrics.MutationsTotal.WithLabelValues(entity, op, "error").Inc()
	} else {
		metrics.MutationsTotal.WithLabelValues(entity, op, "ok").Inc()
	}

	return c.JSON(http.StatusOK, ctrl.Snapshot())
}
