package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/openmarket/marketplace-api/docs"
	"github.com/openmarket/marketplace-api/internal/api/handler"
	"github.com/openmarket/marketplace-api/internal/api/middleware"
	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/ports"
	"github.com/openmarket/marketplace-api/internal/core/token"
)

// Deps carries everything the router needs. Services are constructed in main
// so the analytics dispatcher can share the process lifecycle context.
type Deps struct {
	Logger    zerolog.Logger
	Tokens    *token.Manager
	Auth      ports.AuthService
	Admin     ports.AdminService
	Vendors   ports.VendorService
	Products  ports.ProductService
	Analytics ports.AnalyticsService
	Places    ports.PlacesService
	Events    handler.EventSink
	Mongo     *mongo.Database
	Redis     *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	adminHandler := handler.NewAdminHandler(d.Admin, d.Analytics)
	vendorHandler := handler.NewVendorHandler(d.Vendors)
	productHandler := handler.NewProductHandler(d.Products)
	placesHandler := handler.NewPlacesHandler(d.Places)
	analyticsHandler := handler.NewAnalyticsHandler(d.Events)

	auth := middleware.Auth(d.Tokens)
	optionalAuth := middleware.OptionalAuth(d.Tokens)

	// --- Probes and operational endpoints ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(d.Mongo, d.Redis).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// --- Auth ---
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, auth)

	// --- Admin (explicit allowed set; no role inheritance) ---
	adminGroup := v1.Group("/admin", auth, middleware.RBAC(domain.RoleAdmin))
	adminGroup.GET("/users", adminHandler.ListUsers)
	adminGroup.GET("/vendors", adminHandler.ListVendors)
	adminGroup.POST("/vendors/:id/approve", adminHandler.ApproveVendor)
	adminGroup.POST("/vendors/:id/block", adminHandler.BlockVendor)
	adminGroup.GET("/analytics/summary", adminHandler.AnalyticsSummary)

	// --- Vendors ---
	vendorGroup := v1.Group("/vendors")
	vendorGroup.POST("/apply", vendorHandler.Apply, auth, middleware.RBAC(domain.RoleVendor))
	vendorGroup.GET("/me", vendorHandler.Me, auth, middleware.RBAC(domain.RoleVendor))
	vendorGroup.GET("/:id", vendorHandler.Get)

	// --- Products ---
	v1.GET("/products", productHandler.List)
	v1.GET("/products/:id", productHandler.Get)
	v1.POST("/products", productHandler.Create, auth, middleware.RBAC(domain.RoleVendor))
	v1.PUT("/products/:id", productHandler.Update, auth, middleware.RBAC(domain.RoleVendor))
	v1.DELETE("/products/:id", productHandler.Delete, auth, middleware.RBAC(domain.RoleVendor))

	// --- Places proxy (any authenticated role) ---
	v1.GET("/places/autocomplete", placesHandler.Autocomplete,
		auth, middleware.RBAC(domain.RoleUser, domain.RoleVendor, domain.RoleAdmin))

	// --- Analytics ingestion (anonymous allowed) ---
	v1.POST("/analytics/events", analyticsHandler.Track, optionalAuth)

	return e
}
