package httpserver

import (
	"context"
	"errors"
	"log"

	"quickbite/internal/cart"
	"quickbite/internal/domain"
	menurepo "quickbite/internal/repository/menu"
	authsvc "quickbite/internal/service/auth"
	catalogsvc "quickbite/internal/service/catalog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthService is the access gate the router depends on.
type AuthService interface {
	Signup(ctx context.Context, in authsvc.SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Verify(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string)
	TokenTTLSeconds() int
}

// CatalogService exposes college and menu reads and admin writes.
type CatalogService interface {
	ListColleges(ctx context.Context) ([]domain.College, error)
	GetCollege(ctx context.Context, id string) (*domain.College, error)
	CreateCollege(ctx context.Context, in catalogsvc.CollegeInput) (*domain.College, error)
	UpdateCollege(ctx context.Context, id string, in catalogsvc.CollegeInput) (*domain.College, error)
	ListMenu(ctx context.Context, f menurepo.Filter) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, in catalogsvc.MenuItemInput) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, in catalogsvc.MenuItemInput) (*domain.MenuItem, error)
}

// OrderService drives the order lifecycle.
type OrderService interface {
	Create(ctx context.Context, user *domain.User, c *cart.Cart, college, notes string) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, id string, next domain.Status) (*domain.Order, error)
	Cancel(ctx context.Context, id string) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

// Deps bundles the services the router needs.
type Deps struct {
	AuthSvc    AuthService
	CatalogSvc CatalogService
	OrderSvc   OrderService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.AuthSvc == nil || deps.CatalogSvc == nil || deps.OrderSvc == nil {
		return nil, errors.New("httpserver: missing service dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), requestIDMiddleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	requireAuth := authMiddleware(deps.AuthSvc)
	requireAdmin := adminMiddleware()

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", signupHandler(deps.AuthSvc))
		authGroup.POST("/login", loginHandler(deps.AuthSvc))
		authGroup.POST("/verify", requireAuth, verifyHandler())
		authGroup.POST("/logout", logoutHandler(deps.AuthSvc))
	}

	colleges := router.Group("/colleges")
	{
		colleges.GET("", listCollegesHandler(deps.CatalogSvc))
		colleges.GET("/:id", getCollegeHandler(deps.CatalogSvc))
		colleges.POST("", requireAuth, requireAdmin, createCollegeHandler(deps.CatalogSvc))
		colleges.PUT("/:id", requireAuth, requireAdmin, updateCollegeHandler(deps.CatalogSvc))
	}

	menu := router.Group("/menu")
	{
		menu.GET("", listMenuHandler(deps.CatalogSvc))
		menu.GET("/:id", getMenuItemHandler(deps.CatalogSvc))
		menu.POST("", requireAuth, requireAdmin, createMenuItemHandler(deps.CatalogSvc))
		menu.PUT("/:id", requireAuth, requireAdmin, updateMenuItemHandler(deps.CatalogSvc))
	}

	orders := router.Group("/orders", requireAuth)
	{
		orders.POST("", createOrderHandler(deps.OrderSvc, deps.CatalogSvc))
		orders.GET("/:id", getOrderHandler(deps.OrderSvc))
		orders.GET("/user/:userId", listUserOrdersHandler(deps.OrderSvc))
		orders.PUT("/:id", requireAdmin, updateOrderStatusHandler(deps.OrderSvc))
		orders.DELETE("/:id", cancelOrderHandler(deps.OrderSvc))
	}

	return router, nil
}
