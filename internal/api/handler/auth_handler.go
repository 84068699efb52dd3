package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/admin-console/internal/api/metrics"
	"github.com/jobportal/admin-console/internal/core/domain"
	"github.com/jobportal/admin-console/internal/core/ports"
)

// AuthHandler exposes login, registration, role verification and logout.
type AuthHandler struct {
	identity ports.IdentityService
}

func NewAuthHandler(identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=8"`
	Avatar    string `json:"avatar"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginResponse mirrors the fields the dashboard persists in its client-side
// store at login.
type loginResponse struct {
	Token     string `json:"token"`
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
	Role      string `json:"role"`
}

type roleResponse struct {
	Role string `json:"role"`
}

// Register creates a new administrator account.
//
// @Summary      Register a new administrator
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.identity.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Avatar:    req.Avatar,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, account)
}

// Login authenticates an administrator and returns the token plus the
// profile fields the dashboard stores.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:     result.Token,
		ID:        result.Account.ID,
		Email:     result.Account.Email,
		FirstName: result.Account.FirstName,
		LastName:  result.Account.LastName,
		Avatar:    result.Account.Avatar,
		Role:      result.Account.Role,
	})
}

// CheckRole reports the role claim of the presented token. The dashboard
// calls this before rendering any management screen.
//
// @Summary      Verify the session's role
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  roleResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/check-role [get]
func (h *AuthHandler) CheckRole(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return domain.ErrUnauthenticated
	}

	role, err := h.identity.CheckRole(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, roleResponse{Role: role})
}

// Profile returns the session's own account record for the profile screen.
//
// @Summary      Show the administrator's own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Account
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return domain.ErrUnauthenticated
	}

	account, err := h.identity.Profile(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Logout destroys the persisted session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204  "session destroyed"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return domain.ErrUnauthenticated
	}

	if err := h.identity.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// bearerToken extracts the raw bearer token without verifying it; CheckRole
// and Logout do their own verification.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
