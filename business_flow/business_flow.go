// Package businessflow contains the business logic for the application.
package businessflow

import (
	"context"
	"fmt"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/ledger"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/repository"
	"github.com/CoriMyp/bot-bugalter/utils"
	"github.com/google/uuid"
)

const RequestIDKey = "X-Request-ID"

// Actor identifies who triggered a mutating operation, for the audit
// trail. The zero value stands for system-initiated work.
type Actor struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}

func (a *Actor) String() string {
	if a == nil || (a.ID == 0 && a.Name == "") {
		return "system"
	}
	if a.Username != "" {
		return fmt.Sprintf("%s (@%s)", a.Name, a.Username)
	}
	return fmt.Sprintf("%s (%d)", a.Name, a.ID)
}

// recordOperation appends one audit entry. History write failures are
// returned to the caller so the surrounding transaction rolls back with
// the operation it describes.
func recordOperation(ctx context.Context, historyRepo repository.HistoryRepository, actor *Actor, kind, description string) error {
	entry := &models.OperationHistory{
		CorrelationID: uuid.New(),
		Date:          utils.UTCNow(),
		Actor:         actor.String(),
		Kind:          kind,
		Description:   description,
	}
	return historyRepo.AppendOperation(ctx, entry)
}

// deref flattens a repository result into the value slice the ledger
// functions consume.
func deref[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, p := range in {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// ToTotalsDTO converts aggregated figures to their presentation shape
func ToTotalsDTO(t ledger.Totals) dto.TotalsDTO {
	return dto.TotalsDTO{
		TotalBet:      t.Bet,
		TotalReturn:   t.Return,
		TotalProfit:   t.Profit,
		TotalSalary:   t.Salary,
		TotalExpenses: t.Expenses,
		Reports:       t.Reports,
	}
}

// ToWindowsDTO converts the rolling windows to their presentation shape
func ToWindowsDTO(w ledger.Windows) dto.StatsWindowsDTO {
	return dto.StatsWindowsDTO{
		Day:     ToTotalsDTO(w.Day),
		Week:    ToTotalsDTO(w.Week),
		Month:   ToTotalsDTO(w.Month),
		AllTime: ToTotalsDTO(w.AllTime),
	}
}

// ToReportDTO converts a stored report with preloaded relations to its
// presentation shape, including the derived money figures.
func ToReportDTO(r models.Report) dto.ReportDTO {
	out := dto.ReportDTO{
		ID:               r.ID,
		Date:             r.Date,
		EmployeeID:       r.EmployeeID,
		BetAmount:        r.BetAmount,
		ReturnAmount:     r.ReturnAmount,
		Profit:           ledger.Profit(r),
		Salary:           ledger.Salary(r),
		Penalty:          ledger.Penalty(r),
		SalaryPercentage: ledger.EffectiveRate(r),
		Nickname:         r.Nickname,
		MatchName:        r.MatchName,
		IsError:          r.IsError,
	}
	if r.Source != nil {
		out.SourceName = r.Source.Name
	}
	if r.Country != nil {
		out.CountryName = r.Country.Name
	}
	if r.Bookmaker != nil {
		out.BookmakerName = r.Bookmaker.DisplayName
		out.BookmakerLogin = r.Bookmaker.Name
	}
	if r.Employee != nil {
		out.EmployeeName = r.Employee.Name
	}
	return out
}
