package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/jobportal/admin-console/internal/console"
	"github.com/jobportal/admin-console/internal/core/domain"
)

func newOrdersHandler(resources *stubResources, verifier *stubVerifier) *OrdersHandler {
	registry := console.NewRegistry(resources, resources, resources, resources, verifier, discardLogger)
	return NewOrdersHandler(registry, resources)
}

func TestOrderDetail(t *testing.T) {
	resources := &stubResources{order: &domain.Order{
		ID:           4,
		CustomerName: "Ana",
		ServiceName:  "Premium posting",
		TotalAmount:  99.90,
		Status:       domain.OrderConfirmed,
	}}
	h := newOrdersHandler(resources, &stubVerifier{isAdmin: true})

	c, rec := newTableContext(t, http.MethodGet, "/admin/order/detail/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")
	if err := h.OrderDetail(c); err != nil {
		t.Fatalf("detail: %v", err)
	}

	var order domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if order.ID != 4 || order.CustomerName != "Ana" || order.Status != domain.OrderConfirmed {
		t.Errorf("unexpected order: %+v", order)
	}
}

func TestOrderDetailNotFound(t *testing.T) {
	resources := &stubResources{getOrderErr: domain.ErrRecordNotFound}
	h := newOrdersHandler(resources, &stubVerifier{isAdmin: true})

	c, _ := newTableContext(t, http.MethodGet, "/admin/order/detail/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	err := h.OrderDetail(c)

	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestOrderDetailBackendFailure(t *testing.T) {
	resources := &stubResources{getOrderErr: errors.New("backend down")}
	h := newOrdersHandler(resources, &stubVerifier{isAdmin: true})

	c, _ := newTableContext(t, http.MethodGet, "/admin/order/detail/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")
	err := h.OrderDetail(c)

	var lerr *domain.LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if lerr.Entity != "order" {
		t.Errorf("expected order entity, got %q", lerr.Entity)
	}
}
