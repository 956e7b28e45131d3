package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-petclinic/config"
	deliveryHttp "go-petclinic/internal/delivery/http"
	"go-petclinic/internal/delivery/http/handler"
	"go-petclinic/internal/delivery/http/middleware"
	"go-petclinic/internal/infrastructure/cache"
	"go-petclinic/internal/infrastructure/database"
	"go-petclinic/internal/repository"
	"go-petclinic/internal/usecase"
	"go-petclinic/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema and clinic seed data
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository()
	petRepo := repository.NewPetRepository()
	petTypeRepo := repository.NewPetTypeRepository()
	visitRepo := repository.NewVisitRepository()
	vetRepo := repository.NewVetRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize usecases
	ownerUsecase := usecase.NewOwnerUsecase(db, log, ownerRepo, cfg.Search)
	petUsecase := usecase.NewPetUsecase(db, log, ownerRepo, petRepo, petTypeRepo)
	visitUsecase := usecase.NewVisitUsecase(db, log, petRepo, visitRepo)
	vetUsecase := usecase.NewVetUsecase(db, log, vetRepo, redisClient, cfg.Search.PageSize)

	// Initialize handlers
	ownerHandler := handler.NewOwnerHandler(ownerUsecase, customValidator)
	petHandler := handler.NewPetHandler(petUsecase, customValidator)
	visitHandler := handler.NewVisitHandler(visitUsecase, customValidator)
	vetHandler := handler.NewVetHandler(vetUsecase)

	// Initialize middleware
	requestIDMiddleware := middleware.NewRequestIDMiddleware()
	recoverMiddleware := middleware.NewRecoverMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(ownerHandler, petHandler, visitHandler, vetHandler,
		requestIDMiddleware, recoverMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
