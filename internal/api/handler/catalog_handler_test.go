package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobportal/admin-console/internal/console"
	"github.com/jobportal/admin-console/internal/core/domain"
	"github.com/jobportal/admin-console/internal/core/ports"
)

var discardLogger = zerolog.Nop()

type stubVerifier struct {
	isAdmin bool
	err     error
}

func (v *stubVerifier) VerifyAdmin(ctx context.Context, token string) (bool, error) {
	return v.isAdmin, v.err
}

// stubResources implements all four resource ports over fixed data.
type stubResources struct {
	categories  []domain.Category
	order       *domain.Order
	getOrderErr error
	deleteErr   error
	deletedID   int64
}

func (s *stubResources) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	return s.categories, nil
}
func (s *stubResources) CreateCategory(ctx context.Context, token string, input ports.CategoryInput) error {
	return nil
}
func (s *stubResources) UpdateCategory(ctx context.Context, token string, id int64, input ports.CategoryInput) error {
	return nil
}
func (s *stubResources) DeleteCategory(ctx context.Context, token string, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedID = id
	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	return nil
}

func (s *stubResources) ListServicePacks(ctx context.Context, token string) ([]domain.ServicePack, error) {
	return nil, nil
}
func (s *stubResources) CreateServicePack(ctx context.Context, token string, input ports.ServicePackInput) error {
	return nil
}
func (s *stubResources) UpdateServicePack(ctx context.Context, token string, id int64, input ports.ServicePackInput) error {
	return nil
}
func (s *stubResources) DeleteServicePack(ctx context.Context, token string, id int64) error {
	return nil
}

func (s *stubResources) ListRoles(ctx context.Context, token string) ([]domain.Role, error) {
	return nil, nil
}
func (s *stubResources) CreateRole(ctx context.Context, token string, input ports.RoleInput) error {
	return nil
}
func (s *stubResources) DeleteRole(ctx context.Context, token string, id int64) error { return nil }

func (s *stubResources) ListEmployers(ctx context.Context, token string) ([]domain.Employer, error) {
	return nil, nil
}
func (s *stubResources) DeleteEmployer(ctx context.Context, token string, email string) error {
	return nil
}
func (s *stubResources) ListCustomers(ctx context.Context, token string) ([]domain.Customer, error) {
	return nil, nil
}
func (s *stubResources) DeleteCustomer(ctx context.Context, token string, email string) error {
	return nil
}
func (s *stubResources) ListAddresses(ctx context.Context, token string) ([]domain.Address, error) {
	return nil, nil
}
func (s *stubResources) ListReports(ctx context.Context, token string) ([]domain.Report, error) {
	return nil, nil
}
func (s *stubResources) DeleteReport(ctx context.Context, token string, id int64) error { return nil }

func (s *stubResources) ListJobs(ctx context.Context, token string) ([]domain.Job, error) {
	return nil, nil
}
func (s *stubResources) DeleteJob(ctx context.Context, token string, id int64) error { return nil }
func (s *stubResources) SetJobActive(ctx context.Context, token string, id int64, active bool) error {
	return nil
}

func (s *stubResources) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	return nil, nil
}
func (s *stubResources) GetOrder(ctx context.Context, token string, id int64) (*domain.Order, error) {
	if s.getOrderErr != nil {
		return nil, s.getOrderErr
	}
	return s.order, nil
}
func (s *stubResources) DeleteOrder(ctx context.Context, token string, id int64) error { return nil }
func (s *stubResources) SetOrderStatus(ctx context.Context, token string, id int64, status domain.OrderStatus) error {
	return nil
}

func sampleCategories(n int) []domain.Category {
	categories := make([]domain.Category, n)
	for i := range categories {
		categories[i] = domain.Category{
			ID:           int64(i + 1),
			CategoryName: "Category " + string(rune('A'+i)),
			Description:  "description",
		}
	}
	return categories
}

func newCatalogHandler(resources *stubResources, verifier *stubVerifier) *CatalogHandler {
	registry := console.NewRegistry(resources, resources, resources, resources, verifier, discardLogger)
	return NewCatalogHandler(registry, resources)
}

func newTableContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token", "tok")
	return c, rec
}

type viewPayload struct {
	Entity     string            `json:"entity"`
	Phase      string            `json:"phase"`
	Rows       []domain.Category `json:"rows"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	Notices    []struct {
		Kind   string `json:"kind"`
		Detail string `json:"detail"`
	} `json:"notifications"`
}

func TestListCategoriesRendersPagedView(t *testing.T) {
	resources := &stubResources{categories: sampleCategories(12)}
	h := newCatalogHandler(resources, &stubVerifier{isAdmin: true})

	c, rec := newTableContext(t, http.MethodGet, "/admin/category/all?page=3", "")
	if err := h.ListCategories(c); err != nil {
		t.Fatalf("list: %v", err)
	}

	var view viewPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Entity != "category" || view.Phase != "loaded" {
		t.Errorf("unexpected header: %+v", view)
	}
	if view.Total != 12 || view.TotalPages != 3 || view.Page != 3 {
		t.Errorf("unexpected pagination: total=%d pages=%d page=%d", view.Total, view.TotalPages, view.Page)
	}
	if len(view.Rows) != 2 {
		t.Errorf("expected 2 rows on the last page, got %d", len(view.Rows))
	}
}

func TestListCategoriesAppliesQuery(t *testing.T) {
	resources := &stubResources{categories: []domain.Category{
		{ID: 1, CategoryName: "IT", Description: "tech"},
		{ID: 2, CategoryName: "Finance", Description: "money"},
	}}
	h := newCatalogHandler(resources, &stubVerifier{isAdmin: true})

	c, rec := newTableContext(t, http.MethodGet, "/admin/category/all?query=finance", "")
	if err := h.ListCategories(c); err != nil {
		t.Fatalf("list: %v", err)
	}

	var view viewPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Total != 1 || view.Rows[0].CategoryName != "Finance" {
		t.Errorf("unexpected filtered view: %+v", view)
	}
}

func TestListCategoriesDeniesNonAdmin(t *testing.T) {
	h := newCatalogHandler(&stubResources{}, &stubVerifier{isAdmin: false})

	c, _ := newTableContext(t, http.MethodGet, "/admin/category/all", "")
	err := h.ListCategories(c)

	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestDeleteCategoryReloadsView(t *testing.T) {
	resources := &stubResources{categories: sampleCategories(6)}
	h := newCatalogHandler(resources, &stubVerifier{isAdmin: true})

	c, rec := newTableContext(t, http.MethodDelete, "/admin/category/delete/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	if err := h.DeleteCategory(c); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if resources.deletedID != 3 {
		t.Errorf("expected delete of id 3, got %d", resources.deletedID)
	}
	var view viewPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Total != 5 {
		t.Errorf("view must reflect the reloaded collection, got total %d", view.Total)
	}
	if len(view.Notices) != 1 || view.Notices[0].Kind != "success" {
		t.Errorf("expected a success notification, got %+v", view.Notices)
	}
}

func TestDeleteCategoryFailureKeepsViewInteractive(t *testing.T) {
	resources := &stubResources{
		categories: sampleCategories(6),
		deleteErr:  errors.New("category is referenced by 3 jobs"),
	}
	h := newCatalogHandler(resources, &stubVerifier{isAdmin: true})

	c, rec := newTableContext(t, http.MethodDelete, "/admin/category/delete/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	if err := h.DeleteCategory(c); err != nil {
		t.Fatalf("delete must still render the view, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var view viewPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Total != 6 {
		t.Errorf("collection must stay untouched, got total %d", view.Total)
	}
	if len(view.Notices) != 1 || view.Notices[0].Kind != "error" {
		t.Fatalf("expected an error notification, got %+v", view.Notices)
	}
	if !strings.Contains(view.Notices[0].Detail, "category is referenced by 3 jobs") {
		t.Errorf("server message must surface, got %q", view.Notices[0].Detail)
	}
}
