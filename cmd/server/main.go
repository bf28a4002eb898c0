package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"paylink.backend/internal/config"
	"paylink.backend/internal/infrastructure/blockchain"
	"paylink.backend/internal/infrastructure/repositories"
	"paylink.backend/internal/interfaces/http/handlers"
	"paylink.backend/internal/interfaces/http/middleware"
	"paylink.backend/internal/usecases"
	"paylink.backend/pkg/jwt"
	"paylink.backend/pkg/logger"
	"paylink.backend/pkg/redis"
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
	newEVMClient = func(factory *blockchain.ClientFactory, rpcURL string) (*blockchain.EVMClient, error) {
		return factory.GetEVMClient(rpcURL)
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

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
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

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	claimRepo := repositories.NewClaimRepository(db)

	// Initialize nonce store
	nonceStore := redis.NewNonceStore(cfg.Auth.NonceTTL)

	// Initialize blockchain client and transaction verifier
	clientFactory := blockchain.NewClientFactory(cfg.Blockchain.ReceiptTimeout)
	evmClient, err := newEVMClient(clientFactory, cfg.Blockchain.RPCURL)
	if err != nil {
		logger.Error(context.Background(), "Failed to connect to chain RPC", zap.Error(err))
		return fmt.Errorf("failed to connect to chain rpc: %w", err)
	}

	eventDecoder, err := usecases.NewEventDecoder()
	if err != nil {
		return fmt.Errorf("failed to build event decoder: %w", err)
	}
	txVerifier := usecases.NewTxVerifier(evmClient, eventDecoder, cfg.Blockchain.ContractAddress)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, nonceStore, jwtService)
	claimUsecase := usecases.NewClaimUsecase(claimRepo, txVerifier)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	claimHandler := handlers.NewClaimHandler(claimUsecase)

	// Create auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimit, middleware.DefaultRateWindow))

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		claimHandler:   claimHandler,
		authMiddleware: authMiddleware,
	})

	// Start server
	log.Printf("🚀 Paylink Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
