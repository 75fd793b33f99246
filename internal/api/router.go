package api

import (
	"strconv"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tradeco/marketplace-api/internal/api/handler"
	"github.com/tradeco/marketplace-api/internal/api/middleware"
	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
	"github.com/tradeco/marketplace-api/internal/core/service"
	"github.com/tradeco/marketplace-api/internal/infrastructure/storage"
)

// Deps carries the constructed collaborators the router wires into routes.
// Construction happens in main; the router only connects.
type Deps struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Tokens *service.TokenService

	Auth      ports.AuthService
	Users     ports.UserService
	Products  ports.ProductService
	Dashboard ports.DashboardService

	UploadDir      string
	MaxUploadBytes int64
	Log            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	authMW := middleware.Auth(d.Tokens)
	adminMW := middleware.RBAC(domain.RoleAdmin)
	bodyLimit := echomiddleware.BodyLimit(strconv.FormatInt(d.MaxUploadBytes, 10))

	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	productHandler := handler.NewProductHandler(d.Products)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)

	// --- Auth ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Products: reads are public, writes authenticated ---
	products := e.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/", productHandler.List)
	products.GET("/categories", productHandler.Categories)
	products.GET("/user/:user_id", productHandler.ByUser)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authMW, bodyLimit)
	products.POST("/", productHandler.Create, authMW, bodyLimit)
	products.PUT("/:id", productHandler.Update, authMW, bodyLimit)
	products.DELETE("/:id", productHandler.Delete, authMW)

	// --- Users ---
	users := e.Group("/api/users")
	users.GET("/profile", userHandler.Profile, authMW)
	users.PUT("/profile", userHandler.UpdateProfile, authMW)
	users.GET("/:id", userHandler.Get)
	users.GET("", userHandler.List, authMW, adminMW)
	users.GET("/", userHandler.List, authMW, adminMW)

	// --- Dashboard (admin only) ---
	dashboard := e.Group("/api/dashboard", authMW, adminMW)
	dashboard.GET("/stats", dashboardHandler.Stats)
	dashboard.GET("/products-by-category", dashboardHandler.ProductsByCategory)
	dashboard.GET("/recent-activity", dashboardHandler.RecentActivity)
	dashboard.GET("/users-growth", dashboardHandler.UsersGrowth)
	dashboard.GET("/top-sellers", dashboardHandler.TopSellers)
	dashboard.GET("/price-stats", dashboardHandler.PriceStats)

	// --- Uploaded images ---
	e.Static(storage.URLPrefix, d.UploadDir)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.DB, d.Redis)
	e.GET("/api/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
