// Package ledger derives balances, salaries and period statistics from
// materialized entity snapshots. Every function is a pure fold over the
// collections it is given: nothing is cached, nothing is loaded lazily,
// and soft-deleted rows are expected to be filtered out at the
// repository boundary before they reach this package.
package ledger

import (
	"math"

	"github.com/CoriMyp/bot-bugalter/models"
)

// penaltyMultiplier is applied to the absolute loss of an erroneous
// losing report when computing the employee penalty.
const penaltyMultiplier = 3

// Profit is the raw outcome of a report: return minus bet.
func Profit(r models.Report) float64 {
	return r.ReturnAmount - r.BetAmount
}

// EffectiveRate resolves the salary percentage for a report: the
// explicit override wins, then the bookmaker's current percentage,
// then zero. The bookmaker must be part of the snapshot (preloaded);
// a missing relation resolves to zero rather than triggering a query.
func EffectiveRate(r models.Report) float64 {
	if r.SalaryPercentage != nil {
		return *r.SalaryPercentage
	}
	if r.Bookmaker != nil {
		return r.Bookmaker.SalaryPercentage
	}
	return 0
}

// Salary earned for a single report. Erroneous reports earn nothing
// regardless of their outcome.
func Salary(r models.Report) float64 {
	if r.IsError {
		return 0
	}
	return r.BetAmount * EffectiveRate(r) / 100
}

// Penalty charged for a single report. Only an erroneous report that
// lost money is penalized; an erroneous report with positive profit
// incurs no penalty.
func Penalty(r models.Report) float64 {
	if !r.IsError {
		return 0
	}
	profit := Profit(r)
	if profit >= 0 {
		return 0
	}
	return math.Abs(profit) * penaltyMultiplier * EffectiveRate(r) / 100
}

// RealProfit is the report's contribution to its bookmaker's balance.
func RealProfit(r models.Report) float64 {
	return Profit(r)
}

// RealSalary is the report's net contribution to its employee's
// balance: salary minus penalty.
func RealSalary(r models.Report) float64 {
	return Salary(r) - Penalty(r)
}
