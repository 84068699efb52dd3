package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func adminClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "acc-1",
		"email": "ada@example.com",
		"role":  "ROLE_ADMIN",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func runAuth(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/category/all", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuthMissingHeader(t *testing.T) {
	_, err := runAuth(t, "")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	_, err := runAuth(t, "Basic abc123")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthInvalidSignature(t *testing.T) {
	token := signToken(t, "wrong-secret", adminClaims())

	_, err := runAuth(t, "Bearer "+token)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	claims := adminClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	token := signToken(t, testSecret, claims)

	_, err := runAuth(t, "Bearer "+token)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthInjectsClaims(t *testing.T) {
	token := signToken(t, testSecret, adminClaims())

	c, err := runAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := c.Get("token"); got != token {
		t.Errorf("raw token not injected, got %v", got)
	}
	if got := c.Get("email"); got != "ada@example.com" {
		t.Errorf("email claim not injected, got %v", got)
	}
	if got := c.Get("role"); got != "ROLE_ADMIN" {
		t.Errorf("role claim not injected, got %v", got)
	}
	if got := c.Get("principal_id"); got != "acc-1" {
		t.Errorf("principal id not injected, got %v", got)
	}
}
