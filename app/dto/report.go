package dto

import "time"

// IngestReportRequest carries one proposed report plus the raw lookups
// that must resolve before the row is written.
type IngestReportRequest struct {
	Date                 string  `json:"date" validate:"required"`
	SourceName           string  `json:"source_name" validate:"required"`
	CountryName          string  `json:"country_name" validate:"required"`
	BookmakerDisplayName string  `json:"bookmaker_display_name" validate:"required"`
	BookmakerLogin       string  `json:"bookmaker_login" validate:"required"`
	BetAmount            float64 `json:"bet_amount" validate:"gte=0"`
	ReturnAmount         float64 `json:"return_amount" validate:"gte=0"`
	IsError              bool    `json:"is_error"`
	EmployeeID           int64   `json:"employee_id" validate:"required"`
	Nickname             string  `json:"nickname"`
	MatchName            string  `json:"match_name"`
}

// IngestReportResponse reports the outcome of one ingestion attempt.
// Accepted is the success sentinel; when false, Message carries the
// concatenated validation failures and ReportID is zero.
type IngestReportResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message,omitempty"`
	ReportID uint   `json:"report_id,omitempty"`
}

// ReportDTO is the presentation shape of a stored report with its
// derived money figures.
type ReportDTO struct {
	ID               uint      `json:"id"`
	Date             time.Time `json:"date"`
	SourceName       string    `json:"source_name"`
	CountryName      string    `json:"country_name"`
	BookmakerName    string    `json:"bookmaker_name"`
	BookmakerLogin   string    `json:"bookmaker_login"`
	EmployeeID       int64     `json:"employee_id"`
	EmployeeName     string    `json:"employee_name"`
	BetAmount        float64   `json:"bet_amount"`
	ReturnAmount     float64   `json:"return_amount"`
	Profit           float64   `json:"profit"`
	Salary           float64   `json:"salary"`
	Penalty          float64   `json:"penalty"`
	SalaryPercentage float64   `json:"salary_percentage"`
	Nickname         string    `json:"nickname,omitempty"`
	MatchName        string    `json:"match_name,omitempty"`
	IsError          bool      `json:"is_error"`
}

// ListReportsRequest filters stored reports for listing and export
type ListReportsRequest struct {
	CountryID   *uint  `json:"country_id,omitempty"`
	BookmakerID *uint  `json:"bookmaker_id,omitempty"`
	SourceID    *uint  `json:"source_id,omitempty"`
	EmployeeID  *int64 `json:"employee_id,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

// ImportRowError describes one rejected spreadsheet row
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportReportsResponse summarizes a batch import. The batch always
// runs to completion; rejected rows are listed, accepted rows counted.
type ImportReportsResponse struct {
	Accepted int              `json:"accepted"`
	Rejected int              `json:"rejected"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}
