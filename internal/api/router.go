package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/app2/products-catalog/internal/api/handler"
	"github.com/app2/products-catalog/internal/api/middleware"
	"github.com/app2/products-catalog/internal/core/domain"
	"github.com/app2/products-catalog/internal/core/service"
	"github.com/app2/products-catalog/internal/infrastructure/config"
	mongostore "github.com/app2/products-catalog/internal/infrastructure/db/mongo"
	redisstore "github.com/app2/products-catalog/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The route table below is the authorization policy: routes registered
// without the auth middleware are the declared-public operations, everything
// else passes through the gate exactly once, before any business logic.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	cartRepo := mongostore.NewCartRepository(db)
	catalogCache := redisstore.NewCatalogCache(rdb, cfg.CatalogCacheTTL)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, cfg.AdminLogin, log)
	catalogService := service.NewCatalogService(productRepo, cartRepo, userRepo, catalogCache, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)

	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/admin", authHandler.AdminLogin)

	// --- Catalog / cart routes ---
	e.POST("/product/add", productHandler.Add, authRequired, adminOnly)
	e.GET("/product", productHandler.List)
	e.POST("/product/chart/add", productHandler.AddChart)
	e.GET("/product/clients", productHandler.Clients, authRequired, adminOnly)

	// --- Observability and docs (public) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
