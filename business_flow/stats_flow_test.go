package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsFixture() *StatsFlowImpl {
	countryID := uint(1)
	bookmakerID := uint(1)
	walletID := uint(1)

	return &StatsFlowImpl{
		countryRepo: &fakeCountryRepo{countries: map[uint]*models.Country{
			countryID: {ID: countryID, Name: "Georgia"},
		}},
		bookmakerRepo: &fakeBookmakerRepo{bookmakers: map[uint]*models.Bookmaker{
			bookmakerID: {ID: bookmakerID, Name: "login1", DisplayName: "Betline", CountryID: countryID, SalaryPercentage: 10, IsActive: true},
		}},
		walletRepo: &fakeWalletRepo{wallets: map[uint]*models.Wallet{
			walletID: {ID: walletID, Name: "Main", Category: models.WalletCategoryCountry, CountryID: &countryID, Deposit: 50},
		}},
		employeeRepo: &fakeEmployeeRepo{employees: map[int64]*models.Employee{
			42: {ID: 42, Name: "Ann", Adjustment: 5},
		}},
		sourceRepo: &fakeSourceRepo{sources: map[uint]*models.Source{
			1: {ID: 1, Name: "Forum"},
		}},
		reportRepo: &fakeReportRepo{reports: []*models.Report{
			{
				ID: 1, Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
				SourceID: 1, CountryID: countryID, BookmakerID: bookmakerID, EmployeeID: 42,
				BetAmount: 100, ReturnAmount: 150,
				Bookmaker: &models.Bookmaker{ID: bookmakerID, SalaryPercentage: 10},
			},
		}},
		transactionRepo: &fakeTransactionRepo{transactions: []*models.Transaction{
			{
				ID: 1, Amount: 100, SourceKind: models.SourceKindDeposit,
				ReceiverBookmakerID: &bookmakerID, CountryID: &countryID,
				Timestamp: time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
			},
		}},
	}
}

func TestAggregateScopes(t *testing.T) {
	flow := statsFixture()
	ctx := context.Background()

	t.Run("unknown scope is an error", func(t *testing.T) {
		_, err := flow.Aggregate(ctx, &dto.AggregateRequest{Scope: "planet"})
		require.Error(t, err)
	})

	t.Run("missing country reports not found", func(t *testing.T) {
		resp, err := flow.Aggregate(ctx, &dto.AggregateRequest{Scope: dto.ScopeCountry, ScopeID: 99})
		require.NoError(t, err)
		assert.True(t, resp.NotFound)
		assert.Zero(t, resp.Totals.TotalBet)
	})

	t.Run("country with no records in range yields zeros", func(t *testing.T) {
		resp, err := flow.Aggregate(ctx, &dto.AggregateRequest{
			Scope:     dto.ScopeCountry,
			ScopeID:   1,
			StartDate: "2020-01-01",
			EndDate:   "2020-01-31",
		})
		require.NoError(t, err)
		assert.False(t, resp.NotFound)
		assert.Zero(t, resp.Totals.TotalBet)
		assert.Zero(t, resp.Totals.TotalExpenses)
		assert.Zero(t, resp.Totals.Reports)
	})

	t.Run("country all time includes expenses", func(t *testing.T) {
		resp, err := flow.Aggregate(ctx, &dto.AggregateRequest{Scope: dto.ScopeCountry, ScopeID: 1})
		require.NoError(t, err)
		assert.Equal(t, 100.0, resp.Totals.TotalBet)
		assert.Equal(t, 50.0, resp.Totals.TotalProfit)
		assert.Equal(t, 10.0, resp.Totals.TotalSalary)
		assert.Equal(t, 100.0, resp.Totals.TotalExpenses)
		assert.Equal(t, 1, resp.Totals.Reports)
	})

	t.Run("employee scope carries no expenses", func(t *testing.T) {
		resp, err := flow.Aggregate(ctx, &dto.AggregateRequest{Scope: dto.ScopeEmployee, ScopeID: 42})
		require.NoError(t, err)
		assert.Equal(t, 10.0, resp.Totals.TotalSalary)
		assert.Zero(t, resp.Totals.TotalExpenses)
	})

	t.Run("end date is inclusive", func(t *testing.T) {
		resp, err := flow.Aggregate(ctx, &dto.AggregateRequest{
			Scope:     dto.ScopeCountry,
			ScopeID:   1,
			StartDate: "2026-08-20",
			EndDate:   "2026-08-20",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Totals.Reports)
	})

	t.Run("reversed range is rejected", func(t *testing.T) {
		_, err := flow.Aggregate(ctx, &dto.AggregateRequest{
			Scope:     dto.ScopeCountry,
			ScopeID:   1,
			StartDate: "2026-08-21",
			EndDate:   "2026-08-20",
		})
		require.Error(t, err)
	})
}

func TestBalanceOverview(t *testing.T) {
	flow := statsFixture()

	resp, err := flow.BalanceOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Countries, 1)

	country := resp.Countries[0]
	// bookmaker: deposit 100 plus report profit 50, wallet: 50
	assert.Equal(t, 200.0, country.ActiveBalance)
	assert.Equal(t, 100.0, country.PassiveBalance)
	assert.Equal(t, 200.0, resp.ActiveTotal)
	assert.Equal(t, 100.0, resp.PassiveTotal)
	assert.Empty(t, resp.GeneralWallets)
}

func TestBalanceOverviewDeactivatedBookmaker(t *testing.T) {
	flow := statsFixture()
	bookmakers := flow.bookmakerRepo.(*fakeBookmakerRepo).bookmakers
	bookmakers[1].IsActive = false
	bookmakers[1].DeactivatedAt = utils.UTCNowPtr()

	resp, err := flow.BalanceOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Countries, 1)

	country := resp.Countries[0]
	assert.Equal(t, 200.0, country.ActiveBalance, "deactivation keeps the profile in the active figure")
	assert.Zero(t, country.PassiveBalance, "deactivation drops the profile from the passive figure")
}

func TestBookmakerBalances(t *testing.T) {
	flow := statsFixture()

	balances, err := flow.BookmakerBalances(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, 100.0, balances[0].Deposit)
	assert.Equal(t, 150.0, balances[0].Balance)
}

func TestEmployeeBalance(t *testing.T) {
	flow := statsFixture()

	balance, err := flow.EmployeeBalance(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 10.0, balance.Salary)
	assert.Zero(t, balance.Penalty)
	assert.Equal(t, 5.0, balance.Adjustment)
	assert.Equal(t, 15.0, balance.Balance)

	_, err = flow.EmployeeBalance(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, IsEmployeeNotFound(err))
}

func TestWindowsScopeNotFound(t *testing.T) {
	flow := statsFixture()

	_, notFound, err := flow.Windows(context.Background(), dto.ScopeBookmaker, 999)
	require.NoError(t, err)
	assert.True(t, notFound)
}
