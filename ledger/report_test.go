package ledger

import (
	"testing"

	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/utils"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveRate(t *testing.T) {
	bookmaker := &models.Bookmaker{SalaryPercentage: 12}

	t.Run("OverrideWins", func(t *testing.T) {
		r := models.Report{SalaryPercentage: utils.ToPtr(7.5), Bookmaker: bookmaker}
		assert.Equal(t, 7.5, EffectiveRate(r))
	})

	t.Run("FallsBackToBookmaker", func(t *testing.T) {
		r := models.Report{Bookmaker: bookmaker}
		assert.Equal(t, 12.0, EffectiveRate(r))
	})

	t.Run("ZeroOverrideIsStillAnOverride", func(t *testing.T) {
		r := models.Report{SalaryPercentage: utils.ToPtr(0.0), Bookmaker: bookmaker}
		assert.Equal(t, 0.0, EffectiveRate(r))
	})

	t.Run("NoBookmakerMeansZero", func(t *testing.T) {
		r := models.Report{}
		assert.Equal(t, 0.0, EffectiveRate(r))
	})
}

func TestSalary(t *testing.T) {
	bookmaker := &models.Bookmaker{SalaryPercentage: 12}

	t.Run("PercentageOfBet", func(t *testing.T) {
		r := models.Report{BetAmount: 200, ReturnAmount: 250, Bookmaker: bookmaker}
		assert.InDelta(t, 200*0.12, Salary(r), 1e-9)
	})

	t.Run("ErroneousReportEarnsNothing", func(t *testing.T) {
		r := models.Report{BetAmount: 200, ReturnAmount: 400, IsError: true, Bookmaker: bookmaker}
		assert.Equal(t, 0.0, Salary(r))
	})
}

func TestPenalty(t *testing.T) {
	rate := utils.ToPtr(10.0)

	t.Run("ErroneousLosingReport", func(t *testing.T) {
		r := models.Report{BetAmount: 100, ReturnAmount: 80, IsError: true, SalaryPercentage: rate}
		assert.InDelta(t, 20*3*0.10, Penalty(r), 1e-9)
	})

	t.Run("ErroneousWinningReportNotPenalized", func(t *testing.T) {
		r := models.Report{BetAmount: 100, ReturnAmount: 120, IsError: true, SalaryPercentage: rate}
		assert.Equal(t, 0.0, Penalty(r))
	})

	t.Run("CleanLosingReportNotPenalized", func(t *testing.T) {
		r := models.Report{BetAmount: 100, ReturnAmount: 80, SalaryPercentage: rate}
		assert.Equal(t, 0.0, Penalty(r))
	})
}

func TestRealSalaryAndProfit(t *testing.T) {
	rate := utils.ToPtr(10.0)

	r := models.Report{BetAmount: 100, ReturnAmount: 80, IsError: true, SalaryPercentage: rate}
	assert.InDelta(t, -20.0, RealProfit(r), 1e-9)
	// salary 0 (error), penalty 6
	assert.InDelta(t, -6.0, RealSalary(r), 1e-9)

	clean := models.Report{BetAmount: 100, ReturnAmount: 80, SalaryPercentage: rate}
	assert.InDelta(t, 10.0, RealSalary(clean), 1e-9)
}
