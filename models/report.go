package models

import "time"

// Report is a single betting report filed by an employee. The override
// SalaryPercentage is nullable: a nil value defers to the bookmaker's
// current percentage (and to 0 when the bookmaker is absent). All money
// math on reports lives in the ledger package.
type Report struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Date             time.Time  `gorm:"not null;index:idx_reports_date" json:"date"`
	SourceID         uint       `gorm:"not null;index:idx_reports_source_id" json:"source_id"`
	Source           *Source    `gorm:"foreignKey:SourceID;references:ID" json:"source,omitempty"`
	CountryID        uint       `gorm:"not null;index:idx_reports_country_id" json:"country_id"`
	Country          *Country   `gorm:"foreignKey:CountryID;references:ID" json:"country,omitempty"`
	BookmakerID      uint       `gorm:"not null;index:idx_reports_bookmaker_id" json:"bookmaker_id"`
	Bookmaker        *Bookmaker `gorm:"foreignKey:BookmakerID;references:ID" json:"bookmaker,omitempty"`
	EmployeeID       int64      `gorm:"not null;index:idx_reports_employee_id" json:"employee_id"`
	Employee         *Employee  `gorm:"foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`
	BetAmount        float64    `gorm:"not null" json:"bet_amount"`
	ReturnAmount     float64    `gorm:"not null" json:"return_amount"`
	SalaryPercentage *float64   `json:"salary_percentage,omitempty"`
	MatchName        string     `gorm:"size:512" json:"match_name"`
	Nickname         string     `gorm:"size:255" json:"nickname"`
	IsError          bool       `gorm:"not null;default:false" json:"is_error"`
	IsDeleted        bool       `gorm:"not null;default:false;index:idx_reports_is_deleted" json:"is_deleted"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportFilter represents filter criteria for report queries
type ReportFilter struct {
	ID          *uint
	SourceID    *uint
	CountryID   *uint
	BookmakerID *uint
	EmployeeID  *int64
	IsError     *bool
	IsDeleted   *bool
	DateFrom    *time.Time
	DateTo      *time.Time
}
