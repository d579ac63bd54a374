package models

import (
	"time"

	"github.com/google/uuid"
)

// Operation kinds recorded in the operation history log.
const (
	OperationReportCreated      = "report_created"
	OperationReportDeleted      = "report_deleted"
	OperationReportsImported    = "reports_imported"
	OperationTransactionCreated = "transaction_created"
	OperationTransactionDeleted = "transaction_deleted"
	OperationCountryCreated     = "country_created"
	OperationCountryDeleted     = "country_deleted"
	OperationTemplateCreated    = "template_created"
	OperationTemplateDeleted    = "template_deleted"
	OperationBookmakerCreated   = "bookmaker_created"
	OperationBookmakerUpdated   = "bookmaker_updated"
	OperationBookmakerDeleted   = "bookmaker_deleted"
	OperationWalletCreated      = "wallet_created"
	OperationWalletAdjusted     = "wallet_adjusted"
	OperationWalletDeleted      = "wallet_deleted"
	OperationSourceCreated      = "source_created"
	OperationSourceDeleted      = "source_deleted"
	OperationEmployeeCreated    = "employee_created"
	OperationEmployeeRemoved    = "employee_removed"
	OperationEmployeeAdjusted   = "employee_adjusted"
	OperationSalaryPaid         = "salary_paid"
	OperationAdminGranted       = "admin_granted"
	OperationAdminRevoked       = "admin_revoked"
)

// Commission kinds recorded in the commission history log.
const (
	CommissionKindTransaction = "transaction"
	CommissionKindCountry     = "country"
)

// OperationHistory is an append-only audit trail of mutating operations.
// It is written by the flows and never read back by the ledger engine.
type OperationHistory struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CorrelationID uuid.UUID `gorm:"type:uuid;not null;index:idx_operation_history_correlation" json:"correlation_id"`
	Date          time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_operation_history_date" json:"date"`
	Actor         string    `gorm:"size:255;not null" json:"actor"`
	Kind          string    `gorm:"size:64;not null;index:idx_operation_history_kind" json:"kind"`
	Description   string    `gorm:"type:text" json:"description"`
}

func (OperationHistory) TableName() string {
	return "operation_history"
}

// CommissionHistory is an append-only log of commissions charged.
type CommissionHistory struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_commission_history_date" json:"date"`
	Actor       string    `gorm:"size:255;not null" json:"actor"`
	Commission  float64   `gorm:"not null" json:"commission"`
	Kind        string    `gorm:"size:64;not null" json:"kind"`
	Description string    `gorm:"type:text" json:"description"`
}

func (CommissionHistory) TableName() string {
	return "commission_history"
}

// HistoryFilter represents filter criteria for history queries
type HistoryFilter struct {
	Actor *string
	Kind  *string
	After *time.Time
	Until *time.Time
}
