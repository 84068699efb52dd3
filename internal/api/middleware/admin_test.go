package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubVerifier struct {
	isAdmin bool
	err     error
}

func (v *stubVerifier) VerifyAdmin(ctx context.Context, token string) (bool, error) {
	return v.isAdmin, v.err
}

func runGuard(t *testing.T, token string, verifier *stubVerifier) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if token != "" {
		c.Set("token", token)
	}

	var reached bool
	handler := AdminGuard(verifier)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	return rec, reached
}

func TestAdminGuardMissingToken(t *testing.T) {
	rec, reached := runGuard(t, "", &stubVerifier{isAdmin: true})

	if reached {
		t.Fatal("handler must not run without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}

	var resp guardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Redirect != loginPath {
		t.Errorf("expected redirect to %q, got %q", loginPath, resp.Redirect)
	}
}

func TestAdminGuardNonAdmin(t *testing.T) {
	rec, reached := runGuard(t, "tok", &stubVerifier{isAdmin: false})

	if reached {
		t.Fatal("handler must not run for a non-admin session")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestAdminGuardVerifierErrorFailsClosed(t *testing.T) {
	rec, reached := runGuard(t, "tok", &stubVerifier{isAdmin: true, err: errors.New("store unreachable")})

	if reached {
		t.Fatal("handler must not run when verification errors")
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestAdminGuardPassesAdmin(t *testing.T) {
	rec, reached := runGuard(t, "tok", &stubVerifier{isAdmin: true})

	if !reached {
		t.Fatal("admin session must reach the handler")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
