package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hcharper/portfolio-api/internal/api/handler"
	"github.com/hcharper/portfolio-api/internal/api/middleware"
	"github.com/hcharper/portfolio-api/internal/core/service"
	mongodb "github.com/hcharper/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hcharper/portfolio-api/internal/infrastructure/db/redis"
	"github.com/hcharper/portfolio-api/internal/infrastructure/queue"
	"github.com/hcharper/portfolio-api/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the view-event dispatcher (the caller starts and stops
// the dispatcher with its own context).
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	viewCounter := redisdb.NewViewCounter(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, log)
	blogService := service.NewBlogService(blogRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	viewService := service.NewViewService(blogRepo, viewCounter, log)

	dispatcher := queue.NewDispatcher(0, viewService, log)

	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(blogService, viewService, dispatcher)
	projectHandler := handler.NewProjectHandler(projectService)
	userHandler := handler.NewUserHandler(userService)

	authn := middleware.Auth(tokenService)
	adminOnly := middleware.RequireAdmin()

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Blog routes (reads public, mutations per ownership rule) ---
	e.GET("/api/blogs", blogHandler.List)
	e.GET("/api/blogs/:id", blogHandler.Get)
	e.POST("/api/blogs", blogHandler.Create, authn)
	e.PUT("/api/blogs/:id", blogHandler.Update, authn)
	e.DELETE("/api/blogs/:id", blogHandler.Delete, authn)

	// --- Project routes (reads public, mutations admin only) ---
	e.GET("/api/projects", projectHandler.List)
	e.GET("/api/projects/featured", projectHandler.ListFeatured)
	e.GET("/api/projects/:id", projectHandler.Get)
	e.POST("/api/projects", projectHandler.Create, authn, adminOnly)
	e.PUT("/api/projects/:id", projectHandler.Update, authn, adminOnly)
	e.DELETE("/api/projects/:id", projectHandler.Delete, authn, adminOnly)

	// --- User management (admin only, except single lookup) ---
	e.POST("/api/users", userHandler.Create, authn, adminOnly)
	e.GET("/api/users", userHandler.List, authn, adminOnly)
	e.GET("/api/users/:id", userHandler.Get, authn)
	e.PUT("/api/users/:id", userHandler.Update, authn, adminOnly)
	e.DELETE("/api/users/:id", userHandler.Delete, authn, adminOnly)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e, dispatcher
}
