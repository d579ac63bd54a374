// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/app/handlers"
	"github.com/CoriMyp/bot-bugalter/app/middleware"
	"github.com/CoriMyp/bot-bugalter/config"
	"github.com/CoriMyp/bot-bugalter/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// Handlers bundles everything the router mounts
type Handlers struct {
	Report      handlers.ReportHandlerInterface
	Stats       handlers.StatsHandlerInterface
	Transaction handlers.TransactionHandlerInterface
	Directory   handlers.DirectoryHandlerInterface
	Employee    handlers.EmployeeHandlerInterface
	Browse      handlers.BrowseHandlerInterface
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app      *fiber.App
	cfg      *config.ProductionConfig
	handlers Handlers
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(cfg *config.ProductionConfig, h Handlers) Router {
	app := fiber.New(fiber.Config{
		AppName:      "Bugalter API",
		ServerHeader: "Bugalter",
		ErrorHandler: errorHandler,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:      app,
		cfg:      cfg,
		handlers: h,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	log.Println("Setting up routes...")

	r.setupMiddleware()

	if r.cfg.Metrics.Enabled {
		r.app.Get(r.cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := r.app.Group("/api/v1")

	api.Get("/health", r.healthCheck)

	// Report ingestion and browsing
	reports := api.Group("/reports")
	reports.Post("/", r.handlers.Report.Ingest)
	reports.Get("/", r.handlers.Report.List)
	reports.Post("/import", r.handlers.Report.Import)
	reports.Get("/export", r.handlers.Report.Export)
	reports.Get("/:id", r.handlers.Report.Get)
	reports.Delete("/:id", r.handlers.Report.Delete)

	// Aggregation and balances
	stats := api.Group("/stats")
	stats.Post("/aggregate", r.handlers.Stats.Aggregate)
	stats.Get("/windows", r.handlers.Stats.Windows)
	stats.Get("/balances", r.handlers.Stats.BalanceOverview)
	stats.Get("/balances/countries/:id", r.handlers.Stats.CountryBalance)
	stats.Get("/balances/countries/:id/bookmakers", r.handlers.Stats.BookmakerBalances)
	stats.Get("/balances/wallets", r.handlers.Stats.WalletBalances)
	stats.Get("/balances/employees", r.handlers.Stats.EmployeeBalances)
	stats.Get("/balances/employees/:id", r.handlers.Stats.EmployeeBalance)

	// Money movements
	transactions := api.Group("/transactions")
	transactions.Post("/", r.handlers.Transaction.Create)
	transactions.Get("/:id", r.handlers.Transaction.Get)
	transactions.Delete("/:id", r.handlers.Transaction.Delete)

	// Directory of countries, templates, bookmakers, wallets, sources
	countries := api.Group("/countries")
	countries.Post("/", r.handlers.Directory.CreateCountry)
	countries.Get("/", r.handlers.Directory.ListCountries)
	countries.Delete("/:id", r.handlers.Directory.DeleteCountry)
	countries.Get("/:id/templates", r.handlers.Directory.ListTemplates)
	countries.Get("/:id/transactions", r.handlers.Transaction.ListByCountry)

	templates := api.Group("/templates")
	templates.Post("/", r.handlers.Directory.CreateTemplate)
	templates.Delete("/:id", r.handlers.Directory.DeleteTemplate)

	bookmakers := api.Group("/bookmakers")
	bookmakers.Post("/", r.handlers.Directory.CreateBookmaker)
	bookmakers.Patch("/:id", r.handlers.Directory.UpdateBookmaker)
	bookmakers.Delete("/:id", r.handlers.Directory.DeleteBookmaker)

	wallets := api.Group("/wallets")
	wallets.Post("/", r.handlers.Directory.CreateWallet)
	wallets.Post("/:id/adjust", r.handlers.Directory.AdjustWallet)
	wallets.Delete("/:id", r.handlers.Directory.DeleteWallet)

	sources := api.Group("/sources")
	sources.Post("/", r.handlers.Directory.CreateSource)
	sources.Get("/", r.handlers.Directory.ListSources)
	sources.Delete("/:id", r.handlers.Directory.DeleteSource)

	// Employees and access requests
	employees := api.Group("/employees")
	employees.Post("/access-requests", r.handlers.Employee.RequestAccess)
	employees.Get("/access-requests", r.handlers.Employee.ListWaiting)
	employees.Post("/access-requests/promote", r.handlers.Employee.Promote)
	employees.Delete("/access-requests/:id", r.handlers.Employee.Reject)
	employees.Get("/", r.handlers.Employee.List)
	employees.Post("/adjust", r.handlers.Employee.Adjust)
	employees.Post("/:id/pay-salary", r.handlers.Employee.PaySalary)
	employees.Delete("/:id", r.handlers.Employee.Remove)
	employees.Post("/:id/admin", r.handlers.Employee.GrantAdmin)
	employees.Delete("/:id/admin", r.handlers.Employee.RevokeAdmin)

	// Step-by-step report browsing sessions
	browse := api.Group("/browse/:user_id")
	browse.Post("/", r.handlers.Browse.Start)
	browse.Post("/period", r.handlers.Browse.SubmitPeriod)
	browse.Post("/select/:report_id", r.handlers.Browse.Select)
	browse.Delete("/", r.handlers.Browse.Cancel)

	r.app.Use(r.notFoundHandler)

	log.Println("Routes configured successfully")
}

// setupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	if r.cfg.Metrics.Enabled {
		r.app.Use(middleware.Metrics())
	}

	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","ip":"${ip}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent}}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health" || c.Path() == r.cfg.Metrics.Path
		},
	}))

	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data: fiber.Map{
			"status":    "ok",
			"timestamp": utils.UTCNow().Unix(),
			"service":   "bugalter-api",
		},
	})
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: &dto.ErrorDetail{
			Code:    "NOT_FOUND",
			Message: "The requested resource was not found",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": c.Locals("requestid"),
			},
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error %d: %v", code, err)

	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: "An internal server error occurred",
		Error: &dto.ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
			Details: fiber.Map{
				"timestamp":  utils.UTCNow().Unix(),
				"request_id": c.Locals("requestid"),
			},
		},
	})
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
