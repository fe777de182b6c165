package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/logger"
	"fintrack/internal/server"
	"fintrack/internal/services"
	"fintrack/internal/store"
	"fintrack/internal/store/memory"

	"github.com/gin-gonic/gin"
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack is a personal finance tracker. The JSON API exposes the dashboard summary, transactions and categories.

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	s, closeStore, err := openStore(dbConfig)
	if err != nil {
		return err
	}
	defer closeStore()

	// Initialize services
	categoryService := services.NewCategoryService(s)
	transactionService := services.NewTransactionService(s)
	reportService := services.NewReportService(s)

	if cfg.SeedCategories {
		seeded, err := categoryService.EnsureDefaultCategories(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		if seeded > 0 {
			log.Infow("seeded default categories", "count", seeded)
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := server.NewRouter(server.Services{
		Categories:   categoryService,
		Transactions: transactionService,
		Reports:      reportService,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Addr(), err)
	}

	log.Infof("Starting Fintrack on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return server.Run(ctx, ln, router, cfg.ShutdownTimeout)
}

// openStore connects the configured backend and applies migrations. The
// memory driver keeps everything in process and loses it on exit.
func openStore(dbConfig *database.Config) (store.Store, func(), error) {
	if dbConfig.Driver == database.DriverMemory {
		logger.Get().Warn("Using in-memory store; data will not survive a restart")
		return memory.New(), func() {}, nil
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		_ = dbManager.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	closeFn := func() {
		if err := dbManager.Close(); err != nil {
			logger.Get().Warnf("database close error: %v", err)
		}
	}
	return store.NewGormStore(dbManager.DB()), closeFn, nil
}
