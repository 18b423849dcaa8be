package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickbite/internal/domain"

	"github.com/gin-gonic/gin"
)

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestCreateOrderRecomputesTotal(t *testing.T) {
	chai := domain.MenuItem{ID: "m1", Name: "Masala Chai", PriceCents: 1500, Cafeteria: "Main Cafeteria", Available: true}
	dosa := domain.MenuItem{ID: "m2", Name: "Masala Dosa", PriceCents: 6000, Cafeteria: "Main Cafeteria", Available: true}

	orderSvc := &stubOrderSvc{order: &domain.Order{ID: "o1", Status: domain.StatusPending}}
	router := testRouter(t, Deps{
		AuthSvc:    &stubAuthSvc{user: &domain.User{ID: "u1", Role: domain.RoleUser}},
		CatalogSvc: &stubCatalogSvc{itemsByID: map[string]domain.MenuItem{"m1": chai, "m2": dosa}},
		OrderSvc:   orderSvc,
	})

	rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"college": "ABES Engineering College",
		"items": []map[string]any{
			{"menuItemId": "m1", "quantity": 2},
			{"menuItemId": "m2"},
		},
		"totalCents": 1,
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env["success"] != true {
		t.Fatalf("expected success envelope, got %v", env)
	}
	data, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", env["data"])
	}
	if got := data["totalCents"].(float64); got != 9000 {
		t.Fatalf("client total must be ignored, expected 9000, got %v", got)
	}
	if orderSvc.lastCollege != "ABES Engineering College" {
		t.Fatalf("college not forwarded, got %q", orderSvc.lastCollege)
	}
	if orderSvc.lastCart.Cafeteria() != "Main Cafeteria" {
		t.Fatalf("cart cafeteria = %q", orderSvc.lastCart.Cafeteria())
	}
}

func TestCreateOrderUnknownItem(t *testing.T) {
	router := testRouter(t, Deps{
		AuthSvc:    &stubAuthSvc{user: &domain.User{ID: "u1"}},
		CatalogSvc: &stubCatalogSvc{itemsByID: map[string]domain.MenuItem{}},
	})

	rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"items": []map[string]any{{"menuItemId": "missing", "quantity": 1}},
	})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown item, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env["success"] != false || env["message"] == "" {
		t.Fatalf("expected error envelope, got %v", env)
	}
}

func TestCreateOrderNegativeQuantity(t *testing.T) {
	item := domain.MenuItem{ID: "m1", Name: "Chai", PriceCents: 1500, Cafeteria: "Main Cafeteria", Available: true}
	router := testRouter(t, Deps{
		AuthSvc:    &stubAuthSvc{user: &domain.User{ID: "u1"}},
		CatalogSvc: &stubCatalogSvc{itemsByID: map[string]domain.MenuItem{"m1": item}},
	})

	rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"items": []map[string]any{{"menuItemId": "m1", "quantity": -1}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative quantity, got %d", rec.Code)
	}
}

func TestCreateOrderExplicitZeroQuantity(t *testing.T) {
	item := domain.MenuItem{ID: "m1", Name: "Chai", PriceCents: 1500, Cafeteria: "Main Cafeteria", Available: true}
	router := testRouter(t, Deps{
		AuthSvc:    &stubAuthSvc{user: &domain.User{ID: "u1"}},
		CatalogSvc: &stubCatalogSvc{itemsByID: map[string]domain.MenuItem{"m1": item}},
	})

	rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"items": []map[string]any{{"menuItemId": "m1", "quantity": 0}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("an explicit zero quantity must be rejected, got %d", rec.Code)
	}
}

func TestCreateOrderCollegeCafeteriaMismatch(t *testing.T) {
	item := domain.MenuItem{ID: "m1", Name: "Chai", PriceCents: 1500, Cafeteria: "North Block Cafe", Available: true}
	catalog := &stubCatalogSvc{
		itemsByID: map[string]domain.MenuItem{"m1": item},
		colleges: []domain.College{
			{ID: "c1", Name: "ABES Engineering College", Cafeterias: []string{"Main Cafeteria", "Food Court"}},
		},
	}
	router := testRouter(t, Deps{
		AuthSvc:    &stubAuthSvc{user: &domain.User{ID: "u1"}},
		CatalogSvc: catalog,
	})

	rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"college": "ABES Engineering College",
		"items":   []map[string]any{{"menuItemId": "m1", "quantity": 1}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("cafeteria outside the college must be rejected, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env["success"] != false {
		t.Fatalf("expected error envelope, got %v", env)
	}

	item.Cafeteria = "Food Court"
	catalog.itemsByID["m1"] = item
	rec = doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"college": "ABES Engineering College",
		"items":   []map[string]any{{"menuItemId": "m1", "quantity": 1}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("a cafeteria the college owns must pass, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	unavailable := domain.MenuItem{ID: "m1", Name: "Chai", PriceCents: 1500, Cafeteria: "Main Cafeteria", Available: false}
	router := testRouter(t, Deps{
		AuthSvc:    &stubAuthSvc{user: &domain.User{ID: "u1"}},
		CatalogSvc: &stubCatalogSvc{itemsByID: map[string]domain.MenuItem{"m1": unavailable}},
	})

	// The only requested item is unavailable, so the rebuilt cart is empty.
	rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"items": []map[string]any{{"menuItemId": "m1", "quantity": 1}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env["message"] != "order must have at least one item" {
		t.Fatalf("unexpected message %v", env["message"])
	}
}

func TestGetOrderOwnership(t *testing.T) {
	order := &domain.Order{ID: "o1", UserID: "owner", Status: domain.StatusPending}

	router := testRouter(t, Deps{
		AuthSvc:  &stubAuthSvc{user: &domain.User{ID: "intruder", Role: domain.RoleUser}},
		OrderSvc: &stubOrderSvc{order: order},
	})
	rec := doJSON(t, router, http.MethodGet, "/orders/o1", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for another user's order, got %d", rec.Code)
	}

	router = testRouter(t, Deps{
		AuthSvc:  &stubAuthSvc{user: &domain.User{ID: "staff", Role: domain.RoleAdmin}},
		OrderSvc: &stubOrderSvc{order: order},
	})
	rec = doJSON(t, router, http.MethodGet, "/orders/o1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin must read any order, got %d", rec.Code)
	}
}

func TestCancelOrder(t *testing.T) {
	orderSvc := &stubOrderSvc{order: &domain.Order{ID: "o1", UserID: "u1", Status: domain.StatusPending}}
	router := testRouter(t, Deps{
		AuthSvc:  &stubAuthSvc{user: &domain.User{ID: "u1", Role: domain.RoleUser}},
		OrderSvc: orderSvc,
	})

	rec := doJSON(t, router, http.MethodDelete, "/orders/o1", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	data := env["data"].(map[string]any)
	if data["status"] != string(domain.StatusCancelled) {
		t.Fatalf("expected Cancelled, got %v", data["status"])
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	orderSvc := &stubOrderSvc{order: &domain.Order{ID: "o1", UserID: "u1", Status: domain.StatusPending}}
	admin := &domain.User{ID: "staff", Role: domain.RoleAdmin}
	router := testRouter(t, Deps{AuthSvc: &stubAuthSvc{user: admin}, OrderSvc: orderSvc})

	rec := doJSON(t, router, http.MethodPut, "/orders/o1", map[string]any{"status": "Confirmed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if orderSvc.lastStatus != domain.StatusConfirmed {
		t.Fatalf("status not forwarded, got %q", orderSvc.lastStatus)
	}

	rec = doJSON(t, router, http.MethodPut, "/orders/o1", map[string]any{"status": "shipped"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
	}

	orderSvc.advanceErr = domain.ErrInvalidTransition
	rec = doJSON(t, router, http.MethodPut, "/orders/o1", map[string]any{"status": "Ready"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for invalid transition, got %d", rec.Code)
	}
}

func TestListUserOrders(t *testing.T) {
	router := testRouter(t, Deps{
		AuthSvc:  &stubAuthSvc{user: &domain.User{ID: "u1", Role: domain.RoleUser}},
		OrderSvc: &stubOrderSvc{},
	})

	rec := doJSON(t, router, http.MethodGet, "/orders/user/u2", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for another user's history, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/orders/user/u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if _, ok := env["data"].([]any); !ok {
		t.Fatalf("nil history must serialize as an empty array, got %v", env["data"])
	}
}
