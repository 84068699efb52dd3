package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobportal/admin-console/internal/api/handler"
	"github.com/jobportal/admin-console/internal/api/middleware"
	"github.com/jobportal/admin-console/internal/console"
	"github.com/jobportal/admin-console/internal/core/service"
	"github.com/jobportal/admin-console/internal/infrastructure/backend"
	mongodb "github.com/jobportal/admin-console/internal/infrastructure/db/mongo"
	redisdb "github.com/jobportal/admin-console/internal/infrastructure/db/redis"
)

// Options bundles the router's external dependencies.
type Options struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	Backend   *backend.Client
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("admin_console"))

	// --- Dependencies ---
	accounts := mongodb.NewAccountRepository(opts.Mongo)
	sessions := redisdb.NewSessionStore(opts.Redis, opts.TokenTTL)
	identity := service.NewIdentityService(accounts, sessions, opts.JWTSecret, opts.TokenTTL, opts.Logger)
	registry := console.NewRegistry(opts.Backend, opts.Backend, opts.Backend, opts.Backend, identity, opts.Logger)
	dashboard := service.NewDashboardService(opts.Backend, opts.Logger)

	authHandler := handler.NewAuthHandler(identity)
	catalogHandler := handler.NewCatalogHandler(registry, opts.Backend)
	directoryHandler := handler.NewDirectoryHandler(registry, opts.Backend)
	postingsHandler := handler.NewPostingsHandler(registry, opts.Backend)
	ordersHandler := handler.NewOrdersHandler(registry, opts.Backend)
	dashboardHandler := handler.NewDashboardHandler(dashboard)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/check-role", authHandler.CheckRole)
	e.GET("/auth/profile", authHandler.Profile)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Management routes ---
	// The table controllers run the session guard themselves on activation;
	// the middleware only parses the token and injects claims.
	admin := e.Group("/admin", middleware.Auth(opts.JWTSecret))

	admin.GET("/category/all", catalogHandler.ListCategories)
	admin.POST("/category/create", catalogHandler.CreateCategory)
	admin.PUT("/category/update/:id", catalogHandler.UpdateCategory)
	admin.DELETE("/category/delete/:id", catalogHandler.DeleteCategory)

	admin.GET("/service/all", catalogHandler.ListServicePacks)
	admin.POST("/service/create", catalogHandler.CreateServicePack)
	admin.PUT("/service/update/:id", catalogHandler.UpdateServicePack)
	admin.DELETE("/service/delete/:id", catalogHandler.DeleteServicePack)

	admin.GET("/roles/all", catalogHandler.ListRoles)
	admin.POST("/roles/create", catalogHandler.CreateRole)
	admin.DELETE("/roles/delete/:id", catalogHandler.DeleteRole)

	admin.GET("/employer/all", directoryHandler.ListEmployers)
	admin.DELETE("/employer/delete/:email", directoryHandler.DeleteEmployer)

	admin.GET("/customer/all", directoryHandler.ListCustomers)
	admin.DELETE("/customer/delete/:email", directoryHandler.DeleteCustomer)

	admin.GET("/job/all", postingsHandler.ListJobs)
	admin.DELETE("/job/delete/:id", postingsHandler.DeleteJob)
	admin.PUT("/job/update-status/:id", postingsHandler.SetJobStatus)

	admin.GET("/order/all", ordersHandler.ListOrders)
	admin.GET("/order/detail/:id", ordersHandler.OrderDetail, middleware.AdminGuard(identity))
	admin.DELETE("/order/delete/:id", ordersHandler.DeleteOrder)
	admin.PUT("/order/update-status/:id", ordersHandler.SetOrderStatus)

	admin.GET("/report/all", directoryHandler.ListReports)
	admin.DELETE("/report/delete/:id", directoryHandler.DeleteReport)

	// The dashboard has no table controller, so the guard runs as middleware.
	admin.GET("/dashboard", dashboardHandler.Summary, middleware.AdminGuard(identity))

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
