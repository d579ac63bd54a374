package ledger

import (
	"testing"
	"time"

	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/utils"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	rate := utils.ToPtr(10.0)
	march := func(day int) time.Time {
		return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
	}

	reports := []models.Report{
		{Date: march(1), BetAmount: 100, ReturnAmount: 150, SalaryPercentage: rate},                // salary 10
		{Date: march(5), BetAmount: 200, ReturnAmount: 180, SalaryPercentage: rate},                // salary 20
		{Date: march(5), BetAmount: 100, ReturnAmount: 60, IsError: true, SalaryPercentage: rate},  // penalty 12
		{Date: march(20), BetAmount: 500, ReturnAmount: 700, SalaryPercentage: rate},               // outside
	}
	transactions := []models.Transaction{
		{Timestamp: march(2), Amount: 100, Commission: 5},
		{Timestamp: march(25), Amount: 999}, // outside
	}

	totals := Aggregate(reports, transactions, Between(march(1), march(10)))

	assert.Equal(t, 3, totals.Reports)
	assert.InDelta(t, 400.0, totals.Bet, 1e-9)
	assert.InDelta(t, 390.0, totals.Return, 1e-9)
	assert.InDelta(t, -10.0, totals.Profit, 1e-9)
	assert.InDelta(t, 10+20-12, totals.Salary, 1e-9)
	assert.InDelta(t, 95.0, totals.Expenses, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil, nil, AllTime())
	assert.Equal(t, Totals{}, totals)
}

func TestAggregateWindows(t *testing.T) {
	rate := utils.ToPtr(10.0)
	// Friday 2024-03-15; week starts Monday 2024-03-11.
	now := time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)

	reports := []models.Report{
		{Date: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC), BetAmount: 100, ReturnAmount: 110, SalaryPercentage: rate},
		{Date: time.Date(2024, time.March, 12, 9, 0, 0, 0, time.UTC), BetAmount: 100, ReturnAmount: 90, SalaryPercentage: rate},
		{Date: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC), BetAmount: 100, ReturnAmount: 100, SalaryPercentage: rate},
		{Date: time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC), BetAmount: 100, ReturnAmount: 100, SalaryPercentage: rate},
	}

	w := AggregateWindows(reports, nil, now)

	assert.Equal(t, 1, w.Day.Reports)
	assert.Equal(t, 2, w.Week.Reports)
	assert.Equal(t, 3, w.Month.Reports)
	assert.Equal(t, 4, w.AllTime.Reports)
	assert.InDelta(t, 10.0, w.Day.Profit, 1e-9)
	assert.InDelta(t, 0.0, w.Week.Profit, 1e-9)
}

func TestAggregateIdempotent(t *testing.T) {
	reports := []models.Report{{Date: time.Now(), BetAmount: 10, ReturnAmount: 12}}
	p := AllTime()
	first := Aggregate(reports, nil, p)
	second := Aggregate(reports, nil, p)
	assert.Equal(t, first, second)
}
