package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"quickbite/internal/cart"
	"quickbite/internal/domain"
	menurepo "quickbite/internal/repository/menu"
	authsvc "quickbite/internal/service/auth"
	catalogsvc "quickbite/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubAuthSvc struct {
	user      *domain.User
	token     string
	signupErr error
	loginErr  error
	verifyErr error
}

func (s *stubAuthSvc) Signup(_ context.Context, _ authsvc.SignupInput) (*domain.User, string, error) {
	return s.user, s.token, s.signupErr
}

func (s *stubAuthSvc) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	return s.user, s.token, s.loginErr
}

func (s *stubAuthSvc) Verify(_ context.Context, _ string) (*domain.User, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return s.user, nil
}

func (s *stubAuthSvc) Logout(_ context.Context, _ string) {}

func (s *stubAuthSvc) TokenTTLSeconds() int { return 3600 }

type stubCatalogSvc struct {
	colleges   []domain.College
	college    *domain.College
	items      []domain.MenuItem
	itemsByID  map[string]domain.MenuItem
	err        error
	lastFilter menurepo.Filter
}

func (s *stubCatalogSvc) ListColleges(_ context.Context) ([]domain.College, error) {
	return s.colleges, s.err
}

func (s *stubCatalogSvc) GetCollege(_ context.Context, _ string) (*domain.College, error) {
	if s.college == nil && s.err == nil {
		return nil, domain.ErrNotFound
	}
	return s.college, s.err
}

func (s *stubCatalogSvc) CreateCollege(_ context.Context, in catalogsvc.CollegeInput) (*domain.College, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.College{ID: "col-1", Name: in.Name, Location: in.Location, Cafeterias: in.Cafeterias}, nil
}

func (s *stubCatalogSvc) UpdateCollege(_ context.Context, id string, in catalogsvc.CollegeInput) (*domain.College, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.College{ID: id, Name: in.Name, Location: in.Location, Cafeterias: in.Cafeterias}, nil
}

func (s *stubCatalogSvc) ListMenu(_ context.Context, f menurepo.Filter) ([]domain.MenuItem, error) {
	s.lastFilter = f
	return s.items, s.err
}

func (s *stubCatalogSvc) GetMenuItem(_ context.Context, id string) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	item, ok := s.itemsByID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (s *stubCatalogSvc) CreateMenuItem(_ context.Context, in catalogsvc.MenuItemInput) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.MenuItem{ID: "item-1", Name: in.Name, PriceCents: in.PriceCents}, nil
}

func (s *stubCatalogSvc) UpdateMenuItem(_ context.Context, id string, in catalogsvc.MenuItemInput) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.MenuItem{ID: id, Name: in.Name, PriceCents: in.PriceCents}, nil
}

type stubOrderSvc struct {
	order       *domain.Order
	orders      []domain.Order
	createErr   error
	advanceErr  error
	getErr      error
	lastCart    *cart.Cart
	lastCollege string
	lastStatus  domain.Status
}

func (s *stubOrderSvc) Create(_ context.Context, user *domain.User, c *cart.Cart, college, notes string) (*domain.Order, error) {
	s.lastCart = c
	s.lastCollege = college
	if s.createErr != nil {
		return nil, s.createErr
	}
	if user == nil || user.ID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if c == nil || c.Empty() {
		return nil, domain.ErrEmptyCart
	}
	o := *s.order
	o.UserID = user.ID
	o.TotalCents = c.TotalCents()
	o.Cafeteria = c.Cafeteria()
	return &o, nil
}

func (s *stubOrderSvc) AdvanceStatus(_ context.Context, _ string, next domain.Status) (*domain.Order, error) {
	s.lastStatus = next
	if s.advanceErr != nil {
		return nil, s.advanceErr
	}
	o := *s.order
	o.Status = next
	return &o, nil
}

func (s *stubOrderSvc) Cancel(_ context.Context, id string) (*domain.Order, error) {
	return s.AdvanceStatus(context.Background(), id, domain.StatusCancelled)
}

func (s *stubOrderSvc) Get(_ context.Context, _ string) (*domain.Order, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.order, nil
}

func (s *stubOrderSvc) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, nil
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if deps.AuthSvc == nil {
		deps.AuthSvc = &stubAuthSvc{}
	}
	if deps.CatalogSvc == nil {
		deps.CatalogSvc = &stubCatalogSvc{}
	}
	if deps.OrderSvc == nil {
		deps.OrderSvc = &stubOrderSvc{order: &domain.Order{ID: "o1"}}
	}
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestBuildRouterMissingDeps(t *testing.T) {
	if _, err := buildRouter(logDiscard(), nil, Deps{}); err == nil {
		t.Fatal("expected error for missing dependencies")
	}
}

func TestHealthz(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzWithoutDB(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a pool, got %d", rec.Code)
	}
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router := testRouter(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected a generated request id header")
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "client-id")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "client-id" {
		t.Fatalf("client request id must be echoed, got %q", got)
	}
}

func TestOrdersRequireToken(t *testing.T) {
	router := testRouter(t, Deps{AuthSvc: &stubAuthSvc{verifyErr: authsvc.ErrInvalidToken}})

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", rec.Code)
	}
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}
	router := testRouter(t, Deps{AuthSvc: &stubAuthSvc{user: user}})

	req := httptest.NewRequest(http.MethodPost, "/colleges", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}
}
