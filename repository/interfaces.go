// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/CoriMyp/bot-bugalter/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

// Repository is the generic contract every entity repository embeds.
// ByID and ByFilter return only live rows; soft-deleted entities are
// filtered at this boundary so callers never re-check the flag.
type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F) ([]*T, error)
	ListLive(ctx context.Context) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SoftDelete(ctx context.Context, id uint) error
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
}

// CountryRepository defines operations for countries
type CountryRepository interface {
	Repository[models.Country, models.CountryFilter]
	ByName(ctx context.Context, name string) (*models.Country, error)
}

// BookmakerRepository defines operations for bookmaker profiles
type BookmakerRepository interface {
	Repository[models.Bookmaker, models.BookmakerFilter]
	ListByCountry(ctx context.Context, countryID uint) ([]*models.Bookmaker, error)
	ListByTemplate(ctx context.Context, templateID uint) ([]*models.Bookmaker, error)
	// ByLookup resolves the ingestion lookup: profile login, display
	// name, country, restricted to active live rows.
	ByLookup(ctx context.Context, name, displayName string, countryID uint) (*models.Bookmaker, error)
}

// WalletRepository defines operations for wallets
type WalletRepository interface {
	Repository[models.Wallet, models.WalletFilter]
	ListByCountry(ctx context.Context, countryID uint) ([]*models.Wallet, error)
	ListByCategory(ctx context.Context, category string) ([]*models.Wallet, error)
}

// EmployeeRepository defines operations for employees. Employees have
// no soft-delete flag; removal is physical.
type EmployeeRepository interface {
	ByID(ctx context.Context, id int64) (*models.Employee, error)
	List(ctx context.Context) ([]*models.Employee, error)
	Save(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id int64) error
	UpdateFields(ctx context.Context, id int64, fields map[string]any) error
}

// AdminRepository defines operations for admin markers
type AdminRepository interface {
	IsAdmin(ctx context.Context, employeeID int64) (bool, error)
	Grant(ctx context.Context, employeeID int64) error
	Revoke(ctx context.Context, employeeID int64) error
	List(ctx context.Context) ([]*models.Admin, error)
}

// WaitingUserRepository defines operations for pending access requests
type WaitingUserRepository interface {
	ByID(ctx context.Context, id int64) (*models.WaitingUser, error)
	List(ctx context.Context) ([]*models.WaitingUser, error)
	Save(ctx context.Context, user *models.WaitingUser) error
	Delete(ctx context.Context, id int64) error
}

// TransactionRepository defines operations for transactions
type TransactionRepository interface {
	Repository[models.Transaction, models.TransactionFilter]
	ListByCountry(ctx context.Context, countryID uint) ([]*models.Transaction, error)
	ListByWallet(ctx context.Context, walletID uint) (incoming, outgoing []*models.Transaction, err error)
	ListByBookmaker(ctx context.Context, bookmakerID uint) (sent, received []*models.Transaction, err error)
}

// ReportRepository defines operations for reports. Listings preload the
// bookmaker relation so the engine can resolve the percentage fallback
// without further queries; ListDetailed also preloads source, country
// and employee for presentation and export.
type ReportRepository interface {
	Repository[models.Report, models.ReportFilter]
	ListByCountry(ctx context.Context, countryID uint) ([]*models.Report, error)
	ListByBookmaker(ctx context.Context, bookmakerID uint) ([]*models.Report, error)
	ListBySource(ctx context.Context, sourceID uint) ([]*models.Report, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*models.Report, error)
	ListDetailed(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error)
}

// SourceRepository defines operations for traffic sources
type SourceRepository interface {
	Repository[models.Source, models.SourceFilter]
	ByName(ctx context.Context, name string) (*models.Source, error)
}

// TemplateRepository defines operations for bookmaker templates
type TemplateRepository interface {
	Repository[models.Template, models.TemplateFilter]
	ListByCountry(ctx context.Context, countryID uint) ([]*models.Template, error)
	ByNameAndCountry(ctx context.Context, name string, countryID uint) (*models.Template, error)
}

// HistoryRepository appends to and reads the audit logs. The ledger
// engine never reads these; flows write them and admin screens list them.
type HistoryRepository interface {
	AppendOperation(ctx context.Context, entry *models.OperationHistory) error
	AppendCommission(ctx context.Context, entry *models.CommissionHistory) error
	LastOperations(ctx context.Context, limit int) ([]*models.OperationHistory, error)
	LastCommissions(ctx context.Context, limit int) ([]*models.CommissionHistory, error)
	OperationsByPeriod(ctx context.Context, from, until time.Time) ([]*models.OperationHistory, error)
	CommissionsByPeriod(ctx context.Context, from, until time.Time) ([]*models.CommissionHistory, error)
}
