package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"deskd/internal/application/ticket/usecases"
	"deskd/internal/infrastructure/auth"
	"deskd/internal/infrastructure/config"
	"deskd/internal/infrastructure/repository"
	tickethandlers "deskd/internal/interfaces/http/handlers/ticket"
	"deskd/internal/interfaces/http/middleware"
	"deskd/internal/interfaces/http/routes"
	"deskd/internal/interfaces/web"
	shareddb "deskd/internal/shared/db"
	"deskd/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine         *gin.Engine
	ticketHandler  *tickethandlers.TicketHandler
	summaryHandler *tickethandlers.SummaryHandler
	webHandler     *web.WebHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	webEnabled     bool
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(gdb)
	txMgr := shareddb.NewTransactionManager(gdb)

	createUC := usecases.NewCreateTicketUseCase(ticketRepo, log)
	getUC := usecases.NewGetTicketUseCase(ticketRepo, log)
	updateUC := usecases.NewUpdateTicketUseCase(ticketRepo, txMgr, log)
	deleteUC := usecases.NewDeleteTicketUseCase(ticketRepo, log)
	listUC := usecases.NewListTicketsUseCaseWithLimits(ticketRepo, log, cfg.List.DefaultLimit, cfg.List.MaxLimit)
	addCommentUC := usecases.NewAddCommentUseCase(ticketRepo, txMgr, log)
	listCommentsUC := usecases.NewListCommentsUseCase(ticketRepo, log)
	summaryUC := usecases.NewGetSummaryUseCase(ticketRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createUC, getUC, updateUC, deleteUC, listUC, addCommentUC, listCommentsUC,
	)
	summaryHandler := tickethandlers.NewSummaryHandler(summaryUC)

	var authMiddleware *middleware.AuthMiddleware
	if cfg.Auth.Enabled {
		if cfg.Auth.JWTSecret == "" {
			return nil, fmt.Errorf("auth is enabled but no JWT secret is configured")
		}
		jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, 60)
		authMiddleware = middleware.NewAuthMiddleware(jwtSvc, log)
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimiter = middleware.NewRateLimiter(
			redisClient,
			cfg.Redis.RateLimit,
			time.Duration(cfg.Redis.RateWindowSec)*time.Second,
		)
	}

	var webHandler *web.WebHandler
	if cfg.Web.Enabled {
		renderer, err := web.NewTemplateRenderer(cfg.Web.TemplateDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize template renderer: %w", err)
		}
		webHandler = web.NewWebHandler(
			renderer, createUC, getUC, listUC, addCommentUC, listCommentsUC, summaryUC,
		)
	}

	return &Router{
		engine:         engine,
		ticketHandler:  ticketHandler,
		summaryHandler: summaryHandler,
		webHandler:     webHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		webEnabled:     cfg.Web.Enabled,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS([]string{"*"}))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		SummaryHandler: r.summaryHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	if r.webEnabled && r.webHandler != nil {
		routes.SetupWebRoutes(r.engine, &routes.WebRouteConfig{
			WebHandler: r.webHandler,
		})
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
