package dto

// Aggregation scopes accepted by the stats endpoints.
const (
	ScopeGlobal    = "global"
	ScopeCountry   = "country"
	ScopeBookmaker = "bookmaker"
	ScopeSource    = "source"
	ScopeEmployee  = "employee"
)

// AggregateRequest selects a scope entity and an inclusive date range.
// Dates are formatted YYYY-MM-DD; empty strings leave the bound open.
type AggregateRequest struct {
	Scope     string `json:"scope" validate:"required,oneof=global country bookmaker source employee"`
	ScopeID   int64  `json:"scope_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// TotalsDTO mirrors the aggregation result for one window
type TotalsDTO struct {
	TotalBet      float64 `json:"total_bet"`
	TotalReturn   float64 `json:"total_return"`
	TotalProfit   float64 `json:"total_profit"`
	TotalSalary   float64 `json:"total_salary"`
	TotalExpenses float64 `json:"total_expenses"`
	Reports       int     `json:"reports"`
}

// AggregateResponse reports totals for the requested range. NotFound is
// set when the scope entity does not resolve to a live row; totals are
// zeroed in that case.
type AggregateResponse struct {
	NotFound bool      `json:"not_found"`
	Totals   TotalsDTO `json:"totals"`
}

// StatsWindowsDTO carries the four rolling windows side by side
type StatsWindowsDTO struct {
	Day     TotalsDTO `json:"day"`
	Week    TotalsDTO `json:"week"`
	Month   TotalsDTO `json:"month"`
	AllTime TotalsDTO `json:"all_time"`
}

// CountryBalanceDTO is the derived position of one country
type CountryBalanceDTO struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Flag           string  `json:"flag,omitempty"`
	Commission     float64 `json:"commission"`
	ActiveBalance  float64 `json:"active_balance"`
	PassiveBalance float64 `json:"passive_balance"`
}

// BookmakerBalanceDTO is the derived position of one bookmaker profile
type BookmakerBalanceDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	CountryID   uint    `json:"country_id"`
	IsActive    bool    `json:"is_active"`
	Deposit     float64 `json:"deposit"`
	Balance     float64 `json:"balance"`
}

// WalletBalanceDTO is the derived position of one wallet
type WalletBalanceDTO struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Balance  float64 `json:"balance"`
}

// EmployeeBalanceDTO is the derived position of one employee
type EmployeeBalanceDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Username   string  `json:"username,omitempty"`
	Salary     float64 `json:"salary"`
	Penalty    float64 `json:"penalty"`
	Adjustment float64 `json:"adjustment"`
	Balance    float64 `json:"balance"`
}

// BalanceOverviewResponse is the whole-operation position snapshot
type BalanceOverviewResponse struct {
	Countries      []CountryBalanceDTO `json:"countries"`
	GeneralWallets []WalletBalanceDTO  `json:"general_wallets"`
	ActiveTotal    float64             `json:"active_total"`
	PassiveTotal   float64             `json:"passive_total"`
}
