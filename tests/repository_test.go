// Package tests contains integration test cases that exercise the repository layer against a real database
package tests

import (
	"context"
	"testing"
	"time"

	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/repository"
	testingutil "github.com/CoriMyp/bot-bugalter/testing"
	"github.com/CoriMyp/bot-bugalter/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewCountryRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		t.Run("SaveAndByID", func(t *testing.T) {
			country, err := fixtures.CreateTestCountry("Georgia")
			require.NoError(t, err)
			require.NotZero(t, country.ID)

			found, err := repo.ByID(ctx, country.ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, "Georgia", found.Name)
		})

		t.Run("ByIDNotFound", func(t *testing.T) {
			found, err := repo.ByID(ctx, 99999)
			assert.NoError(t, err)
			assert.Nil(t, found)
		})

		t.Run("ByName", func(t *testing.T) {
			country, err := fixtures.CreateTestCountry("Armenia")
			require.NoError(t, err)

			found, err := repo.ByName(ctx, "Armenia")
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, country.ID, found.ID)
		})

		t.Run("SoftDeleteHidesRow", func(t *testing.T) {
			country, err := fixtures.CreateTestCountry("Latvia")
			require.NoError(t, err)

			require.NoError(t, repo.SoftDelete(ctx, country.ID))

			found, err := repo.ByID(ctx, country.ID)
			assert.NoError(t, err)
			assert.Nil(t, found)

			byName, err := repo.ByName(ctx, "Latvia")
			assert.NoError(t, err)
			assert.Nil(t, byName)
		})

		t.Run("ListLiveExcludesDeleted", func(t *testing.T) {
			live, err := repo.ListLive(ctx)
			require.NoError(t, err)
			for _, c := range live {
				assert.False(t, c.IsDeleted)
				assert.NotEqual(t, "Latvia", c.Name)
			}
		})

		return nil
	})
	require.NoError(t, err)
}

func TestBookmakerRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewBookmakerRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		country, err := fixtures.CreateTestCountry("")
		require.NoError(t, err)
		other, err := fixtures.CreateTestCountry("")
		require.NoError(t, err)

		active, err := fixtures.CreateTestBookmaker(country.ID, "login1", "Betline", 10)
		require.NoError(t, err)

		t.Run("ByLookupMatchesActiveProfile", func(t *testing.T) {
			found, err := repo.ByLookup(ctx, "login1", "Betline", country.ID)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, active.ID, found.ID)
		})

		t.Run("ByLookupWrongCountry", func(t *testing.T) {
			found, err := repo.ByLookup(ctx, "login1", "Betline", other.ID)
			assert.NoError(t, err)
			assert.Nil(t, found)
		})

		t.Run("ByLookupIgnoresInactive", func(t *testing.T) {
			inactive, err := fixtures.CreateTestBookmaker(country.ID, "login2", "Betline", 10)
			require.NoError(t, err)
			require.NoError(t, repo.UpdateFields(ctx, inactive.ID, map[string]any{
				"is_active":      false,
				"deactivated_at": utils.UTCNow(),
			}))

			found, err := repo.ByLookup(ctx, "login2", "Betline", country.ID)
			assert.NoError(t, err)
			assert.Nil(t, found)
		})

		t.Run("ListByCountryExcludesDeleted", func(t *testing.T) {
			gone, err := fixtures.CreateTestBookmaker(country.ID, "login3", "Betline", 10)
			require.NoError(t, err)
			require.NoError(t, repo.SoftDelete(ctx, gone.ID))

			list, err := repo.ListByCountry(ctx, country.ID)
			require.NoError(t, err)
			for _, b := range list {
				assert.NotEqual(t, gone.ID, b.ID)
			}
		})

		t.Run("SoftDeletedStaysHidden", func(t *testing.T) {
			victim, err := fixtures.CreateTestBookmaker(country.ID, "login4", "Betline", 10)
			require.NoError(t, err)
			require.NoError(t, repo.SoftDelete(ctx, victim.ID))

			// A later field update must not bring the row back
			require.NoError(t, repo.UpdateFields(ctx, victim.ID, map[string]any{"salary_percentage": 20.0}))

			found, err := repo.ByID(ctx, victim.ID)
			assert.NoError(t, err)
			assert.Nil(t, found)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestTransactionRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewTransactionRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		country, err := fixtures.CreateTestCountry("")
		require.NoError(t, err)
		wallet, err := fixtures.CreateTestWallet(&country.ID, 0)
		require.NoError(t, err)
		bookmaker, err := fixtures.CreateTestBookmaker(country.ID, "", "", 10)
		require.NoError(t, err)

		// wallet -> bookmaker, then bookmaker -> wallet
		outTx, err := fixtures.CreateTestTransaction(100, 5, models.SourceKindDeposit, &wallet.ID, nil, nil, &bookmaker.ID, &country.ID)
		require.NoError(t, err)
		inTx, err := fixtures.CreateTestTransaction(40, 0, models.SourceKindBalance, nil, &wallet.ID, &bookmaker.ID, nil, &country.ID)
		require.NoError(t, err)

		t.Run("ListByWalletSplitsDirections", func(t *testing.T) {
			incoming, outgoing, err := repo.ListByWallet(ctx, wallet.ID)
			require.NoError(t, err)
			require.Len(t, incoming, 1)
			require.Len(t, outgoing, 1)
			assert.Equal(t, inTx.ID, incoming[0].ID)
			assert.Equal(t, outTx.ID, outgoing[0].ID)
		})

		t.Run("ListByBookmakerSplitsDirections", func(t *testing.T) {
			sent, received, err := repo.ListByBookmaker(ctx, bookmaker.ID)
			require.NoError(t, err)
			require.Len(t, sent, 1)
			require.Len(t, received, 1)
			assert.Equal(t, inTx.ID, sent[0].ID)
			assert.Equal(t, outTx.ID, received[0].ID)
		})

		t.Run("ListByCountry", func(t *testing.T) {
			list, err := repo.ListByCountry(ctx, country.ID)
			require.NoError(t, err)
			assert.Len(t, list, 2)
		})

		t.Run("ByFilterTimeBounds", func(t *testing.T) {
			future := utils.UTCNowAdd(time.Hour)
			list, err := repo.ByFilter(ctx, models.TransactionFilter{After: &future})
			require.NoError(t, err)
			assert.Empty(t, list)

			past := utils.UTCNowAdd(-time.Hour)
			list, err = repo.ByFilter(ctx, models.TransactionFilter{After: &past, CountryID: &country.ID})
			require.NoError(t, err)
			assert.Len(t, list, 2)
		})

		t.Run("SoftDeleteHidesFromListings", func(t *testing.T) {
			require.NoError(t, repo.SoftDelete(ctx, inTx.ID))

			incoming, _, err := repo.ListByWallet(ctx, wallet.ID)
			require.NoError(t, err)
			assert.Empty(t, incoming)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestReportRepository(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewReportRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(testDB)
		ctx := testingutil.CreateTestContext()

		country, err := fixtures.CreateTestCountry("")
		require.NoError(t, err)
		source, err := fixtures.CreateTestSource("")
		require.NoError(t, err)
		bookmaker, err := fixtures.CreateTestBookmaker(country.ID, "", "", 15)
		require.NoError(t, err)
		employee, err := fixtures.CreateTestEmployee("")
		require.NoError(t, err)

		report, err := fixtures.CreateTestReport(source.ID, country.ID, bookmaker.ID, employee.ID, 100, 150, false)
		require.NoError(t, err)

		t.Run("ListByCountryPreloadsBookmaker", func(t *testing.T) {
			list, err := repo.ListByCountry(ctx, country.ID)
			require.NoError(t, err)
			require.Len(t, list, 1)
			require.NotNil(t, list[0].Bookmaker)
			assert.Equal(t, 15.0, list[0].Bookmaker.SalaryPercentage)
		})

		t.Run("ListDetailedPreloadsRelations", func(t *testing.T) {
			list, err := repo.ListDetailed(ctx, models.ReportFilter{ID: &report.ID})
			require.NoError(t, err)
			require.Len(t, list, 1)
			require.NotNil(t, list[0].Source)
			require.NotNil(t, list[0].Country)
			require.NotNil(t, list[0].Employee)
			assert.Equal(t, employee.Name, list[0].Employee.Name)
		})

		t.Run("ByFilterDateBounds", func(t *testing.T) {
			tomorrow := utils.StartOfDay(utils.UTCNowAdd(24 * time.Hour))
			list, err := repo.ByFilter(ctx, models.ReportFilter{DateFrom: &tomorrow})
			require.NoError(t, err)
			assert.Empty(t, list)

			today := utils.StartOfDay(utils.UTCNow())
			list, err = repo.ByFilter(ctx, models.ReportFilter{DateFrom: &today, DateTo: &tomorrow})
			require.NoError(t, err)
			assert.Len(t, list, 1)
		})

		t.Run("ListByEmployee", func(t *testing.T) {
			list, err := repo.ListByEmployee(ctx, employee.ID)
			require.NoError(t, err)
			assert.Len(t, list, 1)
		})

		t.Run("SoftDeleteHidesReport", func(t *testing.T) {
			require.NoError(t, repo.SoftDelete(ctx, report.ID))

			list, err := repo.ListByCountry(ctx, country.ID)
			require.NoError(t, err)
			assert.Empty(t, list)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestEmployeeAndAdminRepositories(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		employeeRepo := repository.NewEmployeeRepository(testDB.DB)
		adminRepo := repository.NewAdminRepository(testDB.DB)
		waitingRepo := repository.NewWaitingUserRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("SaveAndByID", func(t *testing.T) {
			emp := &models.Employee{ID: 42, Name: "Ann"}
			require.NoError(t, employeeRepo.Save(ctx, emp))

			found, err := employeeRepo.ByID(ctx, 42)
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, "Ann", found.Name)
		})

		t.Run("GrantIsIdempotent", func(t *testing.T) {
			require.NoError(t, adminRepo.Grant(ctx, 42))
			require.NoError(t, adminRepo.Grant(ctx, 42))

			isAdmin, err := adminRepo.IsAdmin(ctx, 42)
			require.NoError(t, err)
			assert.True(t, isAdmin)

			admins, err := adminRepo.List(ctx)
			require.NoError(t, err)
			assert.Len(t, admins, 1)
		})

		t.Run("Revoke", func(t *testing.T) {
			require.NoError(t, adminRepo.Revoke(ctx, 42))

			isAdmin, err := adminRepo.IsAdmin(ctx, 42)
			require.NoError(t, err)
			assert.False(t, isAdmin)
		})

		t.Run("WaitingUserLifecycle", func(t *testing.T) {
			require.NoError(t, waitingRepo.Save(ctx, &models.WaitingUser{ID: 77, Name: "Bob"}))

			found, err := waitingRepo.ByID(ctx, 77)
			require.NoError(t, err)
			require.NotNil(t, found)

			require.NoError(t, waitingRepo.Delete(ctx, 77))
			found, err = waitingRepo.ByID(ctx, 77)
			require.NoError(t, err)
			assert.Nil(t, found)
		})

		t.Run("HardDeleteRemovesRow", func(t *testing.T) {
			require.NoError(t, employeeRepo.Delete(ctx, 42))

			found, err := employeeRepo.ByID(ctx, 42)
			require.NoError(t, err)
			assert.Nil(t, found)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestWithTransaction(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		repo := repository.NewCountryRepository(testDB.DB)
		ctx := testingutil.CreateTestContext()

		t.Run("CommitPersists", func(t *testing.T) {
			err := repository.WithTransaction(ctx, testDB.DB, func(txCtx context.Context) error {
				return repo.Save(txCtx, &models.Country{Name: "Committed"})
			})
			require.NoError(t, err)

			found, err := repo.ByName(ctx, "Committed")
			require.NoError(t, err)
			assert.NotNil(t, found)
		})

		t.Run("ErrorRollsBack", func(t *testing.T) {
			err := repository.WithTransaction(ctx, testDB.DB, func(txCtx context.Context) error {
				if err := repo.Save(txCtx, &models.Country{Name: "RolledBack"}); err != nil {
					return err
				}
				return assert.AnError
			})
			require.Error(t, err)

			found, err := repo.ByName(ctx, "RolledBack")
			require.NoError(t, err)
			assert.Nil(t, found)
		})

		return nil
	})
	require.NoError(t, err)
}
