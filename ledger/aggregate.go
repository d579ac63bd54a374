package ledger

import (
	"time"

	"github.com/CoriMyp/bot-bugalter/models"
)

// Totals are the aggregated figures for one period and scope. Salary is
// net of penalties. Expenses only apply to country and global scopes;
// callers aggregating a bookmaker, source or employee pass no
// transactions and the field stays zero.
type Totals struct {
	Bet      float64 `json:"total_bet"`
	Return   float64 `json:"total_return"`
	Profit   float64 `json:"total_profit"`
	Salary   float64 `json:"total_salary"`
	Expenses float64 `json:"total_expenses"`
	Reports  int     `json:"total_reports"`
}

// Aggregate folds the reports and transactions falling inside the
// period. Inputs are expected to be live (non-deleted) rows already
// narrowed to the scope; the date filter is the only one applied here.
func Aggregate(reports []models.Report, transactions []models.Transaction, p Period) Totals {
	var totals Totals
	for _, r := range reports {
		if !p.Contains(r.Date) {
			continue
		}
		totals.Reports++
		totals.Bet += r.BetAmount
		totals.Return += r.ReturnAmount
		totals.Profit += Profit(r)
		totals.Salary += RealSalary(r)
	}
	for _, t := range transactions {
		if !p.Contains(t.Timestamp) {
			continue
		}
		totals.Expenses += RealAmount(t)
	}
	return totals
}

// Windows are the predefined rolling aggregates computed from a single
// loaded collection: current day, week since Monday, calendar month,
// and the unbounded history.
type Windows struct {
	Day     Totals `json:"day"`
	Week    Totals `json:"week"`
	Month   Totals `json:"month"`
	AllTime Totals `json:"all_time"`
}

// AggregateWindows computes every rolling window against the same
// report and transaction collections.
func AggregateWindows(reports []models.Report, transactions []models.Transaction, now time.Time) Windows {
	return Windows{
		Day:     Aggregate(reports, transactions, Today(now)),
		Week:    Aggregate(reports, transactions, ThisWeek(now)),
		Month:   Aggregate(reports, transactions, ThisMonth(now)),
		AllTime: Aggregate(reports, transactions, AllTime()),
	}
}
