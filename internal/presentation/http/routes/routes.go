package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/subho2010/money-records-api/internal/config"
	domainRepo "github.com/subho2010/money-records-api/internal/domain/repository"
	"github.com/subho2010/money-records-api/internal/presentation/http/handler"
	"github.com/subho2010/money-records-api/internal/presentation/http/middleware"
	"github.com/subho2010/money-records-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	Ledger  *handler.LedgerHandler
	Due     *handler.DueHandler
	Receipt *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Retried financial writes replay their first response
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})

	// Profile routes
	protected.GET("/profile", h.Profile.Get)
	protected.PUT("/profile", h.Profile.Update)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Verification routes
	verify := protected.Group("/verify")
	{
		verify.POST("/email", h.Profile.IssueEmailCode)
		verify.POST("/email/confirm", h.Profile.ConfirmEmailCode)
		verify.POST("/phone", h.Profile.IssuePhoneCode)
		verify.POST("/phone/confirm", h.Profile.ConfirmPhoneCode)
	}

	// Ledger routes
	ledger := protected.Group("/ledger")
	{
		ledger.GET("", h.Ledger.List)
		ledger.POST("/transactions", idempotency, h.Ledger.Post)
		ledger.POST("/recompute", h.Ledger.Recompute)
		ledger.GET("/export", h.Ledger.ExportCSV)
	}

	// Due record routes
	dues := protected.Group("/dues")
	{
		dues.GET("", h.Due.List)
		dues.POST("", idempotency, h.Due.Create)
		dues.POST("/:id/pay", idempotency, h.Due.MarkPaid)
	}

	// Receipt routes
	receipts := protected.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", idempotency, h.Receipt.Create)
		receipts.GET("/next-number", h.Receipt.NextNumber)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.GET("/:id/print", h.Receipt.Print)
	}
}
