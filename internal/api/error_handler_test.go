package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobportal/admin-console/internal/core/domain"
)

var discardLogger = zerolog.Nop()

func resolveFor(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/category/all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return resolveError(err, discardLogger, c)
}

func TestResolveErrorMapping(t *testing.T) {
	cases := []struct {
		name         string
		err          error
		wantCode     int
		wantRedirect string
	}{
		{"unauthenticated redirects to login", domain.ErrUnauthenticated, http.StatusUnauthorized, "/auth/login"},
		{"forbidden redirects to login", domain.ErrForbidden, http.StatusForbidden, "/auth/login"},
		{"expired session redirects to login", domain.ErrSessionNotFound, http.StatusUnauthorized, "/auth/login"},
		{"load failure is a bad gateway", &domain.LoadError{Entity: "job", Cause: errors.New("down")}, http.StatusBadGateway, ""},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, ""},
		{"missing account", domain.ErrAccountNotFound, http.StatusNotFound, ""},
		{"duplicate account", domain.ErrAccountExists, http.StatusConflict, ""},
		{"missing record", domain.ErrRecordNotFound, http.StatusNotFound, ""},
		{"invalid order status", domain.ErrInvalidOrderStatus, http.StatusUnprocessableEntity, ""},
		{"echo error passes through", echo.NewHTTPError(http.StatusTeapot, "nope"), http.StatusTeapot, ""},
		{"unknown error is internal", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, resp := resolveFor(t, tc.err)
			if code != tc.wantCode {
				t.Errorf("expected %d, got %d", tc.wantCode, code)
			}
			if resp.Redirect != tc.wantRedirect {
				t.Errorf("expected redirect %q, got %q", tc.wantRedirect, resp.Redirect)
			}
		})
	}
}

func TestResolveErrorHidesInternalDetails(t *testing.T) {
	_, resp := resolveFor(t, errors.New("pq: connection refused"))

	if resp.Error != "internal server error" {
		t.Errorf("internal causes must not leak, got %q", resp.Error)
	}
}
