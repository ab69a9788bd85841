package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"orderdesk.backend/internal/config"
	"orderdesk.backend/internal/infrastructure/jobs"
	"orderdesk.backend/internal/infrastructure/payments"
	"orderdesk.backend/internal/infrastructure/repositories"
	"orderdesk.backend/internal/interfaces/http/handlers"
	"orderdesk.backend/internal/interfaces/http/middleware"
	"orderdesk.backend/internal/usecases"
	"orderdesk.backend/pkg/jwt"
	"orderdesk.backend/pkg/logger"
	"orderdesk.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	codeRepo := repositories.NewVerificationCodeRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	branchRepo := repositories.NewBranchRepository(db)
	menuRepo := repositories.NewMenuRepository(db)
	menuItemRepo := repositories.NewMenuItemRepository(db)
	basketRepo := repositories.NewBasketRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	uow := repositories.NewUnitOfWork(db)

	paymentProvider := payments.NewClient(
		cfg.Payments.ProviderBaseURL,
		cfg.Payments.APIKey,
		cfg.Payments.Timeout,
	)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, codeRepo, jwtService)
	userUsecase := usecases.NewUserUsecase(userRepo)
	companyUsecase := usecases.NewCompanyUsecase(companyRepo, userRepo)
	branchUsecase := usecases.NewBranchUsecase(branchRepo, companyRepo, userRepo)
	menuUsecase := usecases.NewMenuUsecase(menuRepo, branchRepo)
	menuItemUsecase := usecases.NewMenuItemUsecase(menuItemRepo, menuRepo)
	basketUsecase := usecases.NewBasketUsecase(basketRepo, menuItemRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, basketRepo, branchRepo, uow)
	paymentUsecase := usecases.NewPaymentUsecase(paymentRepo, orderRepo, paymentProvider, uow, cfg.Payments.Currency)
	cleanupUsecase := usecases.NewCleanupUsecase(userRepo, codeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)
	companyHandler := handlers.NewCompanyHandler(companyUsecase)
	branchHandler := handlers.NewBranchHandler(branchUsecase)
	menuHandler := handlers.NewMenuHandler(menuUsecase)
	menuItemHandler := handlers.NewMenuItemHandler(menuItemUsecase)
	basketHandler := handlers.NewBasketHandler(basketUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)
	cleanupHandler := handlers.NewCleanupHandler(cleanupUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanupJob := jobs.NewVerificationCleanupJob(cleanupUsecase, cfg.Cleanup.Interval)
	go cleanupJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		userHandler:     userHandler,
		companyHandler:  companyHandler,
		branchHandler:   branchHandler,
		menuHandler:     menuHandler,
		menuItemHandler: menuItemHandler,
		basketHandler:   basketHandler,
		orderHandler:    orderHandler,
		paymentHandler:  paymentHandler,
		cleanupHandler:  cleanupHandler,
		authMiddleware:  authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		cleanupJob.Stop()
		cancel()
	}()

	log.Printf("🚀 OrderDesk Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
