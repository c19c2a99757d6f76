package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/subho2010/money-records-api/internal/application/service"
	"github.com/subho2010/money-records-api/internal/config"
	"github.com/subho2010/money-records-api/internal/infrastructure/database"
	"github.com/subho2010/money-records-api/internal/infrastructure/repository"
	"github.com/subho2010/money-records-api/internal/presentation/http/handler"
	"github.com/subho2010/money-records-api/internal/presentation/http/routes"
	"github.com/subho2010/money-records-api/pkg/email"
	"github.com/subho2010/money-records-api/pkg/sms"
	"github.com/subho2010/money-records-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	dueRepo := repository.NewDueRecordRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	verificationRepo := repository.NewVerificationCodeRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	txManager := repository.NewTxManager(db)

	// Per-user serialization for balance and numbering writes
	locks := service.NewUserLocks()

	// Expired idempotency keys are dead weight, sweep them hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Failed to delete expired idempotency keys: %v", err)
			}
		}
	}()

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// SMS delivery is logged until a gateway is configured
	smsSender := sms.NewLogSender()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	verificationService := service.NewVerificationService(userRepo, verificationRepo, txManager, emailService, smsSender)
	ledgerService := service.NewLedgerService(userRepo, transactionRepo, txManager, locks)
	dueService := service.NewDueService(userRepo, dueRepo, transactionRepo, txManager, locks)
	receiptService := service.NewReceiptService(userRepo, receiptRepo, txManager, locks)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Profile: handler.NewProfileHandler(userService, verificationService),
		Ledger:  handler.NewLedgerHandler(ledgerService),
		Due:     handler.NewDueHandler(dueService),
		Receipt: handler.NewReceiptHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
