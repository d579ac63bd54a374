// Package main provides the main entry point for the Bugalter accounting service
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CoriMyp/bot-bugalter/app/handlers"
	"github.com/CoriMyp/bot-bugalter/app/router"
	businessflow "github.com/CoriMyp/bot-bugalter/business_flow"
	"github.com/CoriMyp/bot-bugalter/config"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/repository"
	"github.com/CoriMyp/bot-bugalter/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Application represents the main application structure
type Application struct {
	router    router.Router
	config    *config.ProductionConfig
	server    *fiber.App
	stopFuncs []func()
}

func main() {
	log.Println("Starting Bugalter application...")

	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.SetupLogging(utils.LogRotationOptions{
		FilePath:   cfg.Logging.FilePath,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})

	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server starting on %s", address)

		if err := app.server.Listen(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-sigChan
	log.Println("Shutting down gracefully...")

	for _, fn := range app.stopFuncs {
		fn()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// migrateDatabase keeps the schema in step with the model definitions
func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Country{},
		&models.Template{},
		&models.Bookmaker{},
		&models.Wallet{},
		&models.Source{},
		&models.Employee{},
		&models.Admin{},
		&models.WaitingUser{},
		&models.Report{},
		&models.Transaction{},
		&models.OperationHistory{},
		&models.CommissionHistory{},
	)
}

// initializeCache initializes the Redis client and verifies connectivity
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if cfg.Provider != "redis" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established to %s (db=%d)", cfg.RedisURL, cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor starts a background goroutine that periodically pings Redis
// to detect connectivity issues. The returned cancel function stops the monitor.
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf("Redis healthcheck failed: %v", err)
				}
				c()
			}
		}
	}()
	return cancel
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	var stopFuncs []func()

	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := migrateDatabase(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	var sessions businessflow.SessionStore
	if rc != nil {
		sessions = businessflow.NewRedisSessionStore(rc, cfg.Workflow.SessionTTL)
		cancel := startCacheHealthMonitor(context.Background(), rc, 30*time.Second)
		stopFuncs = append(stopFuncs, cancel)
	} else {
		sessions = businessflow.NewMemorySessionStore(cfg.Workflow.SessionTTL)
	}

	// Initialize repositories
	countryRepo := repository.NewCountryRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	bookmakerRepo := repository.NewBookmakerRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	sourceRepo := repository.NewSourceRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	waitingRepo := repository.NewWaitingUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// Initialize business flows
	reportFlow := businessflow.NewReportFlow(reportRepo, employeeRepo, sourceRepo, countryRepo, bookmakerRepo, historyRepo, db)
	statsFlow := businessflow.NewStatsFlow(countryRepo, bookmakerRepo, walletRepo, employeeRepo, sourceRepo, reportRepo, transactionRepo)
	transactionFlow := businessflow.NewTransactionFlow(transactionRepo, historyRepo, db)
	directoryFlow := businessflow.NewDirectoryFlow(countryRepo, templateRepo, bookmakerRepo, walletRepo, sourceRepo, historyRepo, db)
	employeeFlow := businessflow.NewEmployeeFlow(employeeRepo, waitingRepo, adminRepo, reportRepo, historyRepo, db)
	exportFlow := businessflow.NewExportFlow(reportFlow, historyRepo)
	browseFlow := businessflow.NewBrowseFlow(sessions, reportFlow)

	// Initialize handlers
	v := validator.New()
	h := router.Handlers{
		Report:      handlers.NewReportHandler(reportFlow, exportFlow, v),
		Stats:       handlers.NewStatsHandler(statsFlow, v),
		Transaction: handlers.NewTransactionHandler(transactionFlow, v),
		Directory:   handlers.NewDirectoryHandler(directoryFlow, v),
		Employee:    handlers.NewEmployeeHandler(employeeFlow, v),
		Browse:      handlers.NewBrowseHandler(browseFlow),
	}

	appRouter := router.NewFiberRouter(cfg, h)

	return &Application{
		router:    appRouter,
		config:    cfg,
		server:    appRouter.GetApp(),
		stopFuncs: stopFuncs,
	}, nil
}
