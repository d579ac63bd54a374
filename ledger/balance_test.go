package ledger

import (
	"testing"

	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/stretchr/testify/assert"
)

func TestRealAmount(t *testing.T) {
	assert.Equal(t, 100.0, RealAmount(models.Transaction{Amount: 100}))
	assert.Equal(t, 95.0, RealAmount(models.Transaction{Amount: 100, Commission: 5}))
}

func TestWalletBalance(t *testing.T) {
	w := models.Wallet{Deposit: 1000, Adjustment: -50}
	incoming := []models.Transaction{
		{Amount: 200, Commission: 10},
		{Amount: 300},
	}
	outgoing := []models.Transaction{
		{Amount: 150},
	}

	assert.InDelta(t, 1000+190+300-150-50, WalletBalance(w, incoming, outgoing), 1e-9)

	t.Run("InsertionOrderIrrelevant", func(t *testing.T) {
		reversed := []models.Transaction{incoming[1], incoming[0]}
		assert.Equal(t, WalletBalance(w, incoming, outgoing), WalletBalance(w, reversed, outgoing))
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := WalletBalance(w, incoming, outgoing)
		assert.Equal(t, first, WalletBalance(w, incoming, outgoing))
	})
}

func TestBookmakerDepositAndBalance(t *testing.T) {
	sent := []models.Transaction{
		{Amount: 40, SourceKind: models.SourceKindDeposit},
		{Amount: 25, SourceKind: models.SourceKindBalance},
	}
	received := []models.Transaction{
		{Amount: 150, Commission: 10, SourceKind: models.SourceKindDeposit},
		{Amount: 60, Commission: 5, SourceKind: models.SourceKindBalance},
	}
	reports := []models.Report{
		{BetAmount: 100, ReturnAmount: 130}, // +30
		{BetAmount: 100, ReturnAmount: 90},  // -10
	}

	deposit := BookmakerDeposit(sent, received)
	assert.InDelta(t, -40+140, deposit, 1e-9)

	balance := BookmakerBalance(sent, received, reports)
	assert.InDelta(t, deposit+30-10-25+55, balance, 1e-9)

	t.Run("DepositIgnoresBalanceKind", func(t *testing.T) {
		onlyBalance := []models.Transaction{{Amount: 999, SourceKind: models.SourceKindBalance}}
		assert.Equal(t, 0.0, BookmakerDeposit(onlyBalance, nil))
	})
}

func TestEmployeeBalance(t *testing.T) {
	rate := 10.0
	bookmaker := &models.Bookmaker{SalaryPercentage: rate}
	reports := []models.Report{
		{BetAmount: 100, ReturnAmount: 150, Bookmaker: bookmaker},                // salary 10
		{BetAmount: 200, ReturnAmount: 180, Bookmaker: bookmaker},                // salary 20, loss but clean
		{BetAmount: 100, ReturnAmount: 60, IsError: true, Bookmaker: bookmaker},  // penalty 12
		{BetAmount: 100, ReturnAmount: 160, IsError: true, Bookmaker: bookmaker}, // nothing
	}
	e := models.Employee{Adjustment: 5}

	assert.InDelta(t, 30.0, EmployeeSalary(reports), 1e-9)
	assert.InDelta(t, 12.0, EmployeePenalty(reports), 1e-9)
	assert.InDelta(t, 5+30-12, EmployeeBalance(e, reports), 1e-9)
}

func TestCountryLedger(t *testing.T) {
	// One active bookmaker with deposit 100 and balance 150, one wallet
	// with balance 50.
	active := BookmakerLedger{
		Bookmaker: models.Bookmaker{ID: 1, IsActive: true},
		Received:  []models.Transaction{{Amount: 100, SourceKind: models.SourceKindDeposit}},
		Reports:   []models.Report{{BetAmount: 100, ReturnAmount: 150}},
	}
	wallet := WalletLedger{Wallet: models.Wallet{Deposit: 50}}

	country := CountryLedger{
		Country:    models.Country{ID: 1, Name: "X"},
		Bookmakers: []BookmakerLedger{active},
		Wallets:    []WalletLedger{wallet},
	}

	assert.InDelta(t, 150.0, active.Balance(), 1e-9)
	assert.InDelta(t, 200.0, country.ActiveBalance(), 1e-9)
	assert.InDelta(t, 100.0, country.Balance(), 1e-9) // wallet excluded by definition

	t.Run("DeactivationLeavesBalancesButDropsPassive", func(t *testing.T) {
		deactivated := active
		deactivated.Bookmaker.IsActive = false
		c := country
		c.Bookmakers = []BookmakerLedger{deactivated}

		assert.Equal(t, active.Deposit(), deactivated.Deposit())
		assert.Equal(t, active.Balance(), deactivated.Balance())
		assert.InDelta(t, 200.0, c.ActiveBalance(), 1e-9)
		assert.InDelta(t, 0.0, c.Balance(), 1e-9)
	})
}
