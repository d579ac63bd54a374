package testing

import (
	"fmt"
	"math/rand"

	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/utils"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestCountry creates a country with a unique name
func (tf *TestFixtures) CreateTestCountry(name string) (*models.Country, error) {
	if name == "" {
		name = fmt.Sprintf("Country %06d", rand.Intn(1000000))
	}
	country := &models.Country{
		Name: name,
		Flag: "🏳️",
	}
	if err := tf.DB.DB.Create(country).Error; err != nil {
		return nil, fmt.Errorf("failed to create test country: %w", err)
	}
	return country, nil
}

// CreateTestTemplate creates a template under the given country
func (tf *TestFixtures) CreateTestTemplate(countryID uint, name string, percentage float64) (*models.Template, error) {
	if name == "" {
		name = fmt.Sprintf("Template %06d", rand.Intn(1000000))
	}
	template := &models.Template{
		Name:               name,
		CountryID:          countryID,
		EmployeePercentage: percentage,
	}
	if err := tf.DB.DB.Create(template).Error; err != nil {
		return nil, fmt.Errorf("failed to create test template: %w", err)
	}
	return template, nil
}

// CreateTestBookmaker creates an active bookmaker profile
func (tf *TestFixtures) CreateTestBookmaker(countryID uint, login, displayName string, percentage float64) (*models.Bookmaker, error) {
	if login == "" {
		login = fmt.Sprintf("login%06d", rand.Intn(1000000))
	}
	if displayName == "" {
		displayName = "Betline"
	}
	bookmaker := &models.Bookmaker{
		Name:             login,
		DisplayName:      displayName,
		CountryID:        countryID,
		SalaryPercentage: percentage,
		IsActive:         true,
	}
	if err := tf.DB.DB.Create(bookmaker).Error; err != nil {
		return nil, fmt.Errorf("failed to create test bookmaker: %w", err)
	}
	return bookmaker, nil
}

// CreateTestWallet creates a wallet; pass a nil country for a general one
func (tf *TestFixtures) CreateTestWallet(countryID *uint, deposit float64) (*models.Wallet, error) {
	category := models.WalletCategoryGeneral
	if countryID != nil {
		category = models.WalletCategoryCountry
	}
	wallet := &models.Wallet{
		Name:      fmt.Sprintf("Wallet %06d", rand.Intn(1000000)),
		Category:  category,
		CountryID: countryID,
		Deposit:   deposit,
	}
	if err := tf.DB.DB.Create(wallet).Error; err != nil {
		return nil, fmt.Errorf("failed to create test wallet: %w", err)
	}
	return wallet, nil
}

// CreateTestSource creates a traffic source
func (tf *TestFixtures) CreateTestSource(name string) (*models.Source, error) {
	if name == "" {
		name = fmt.Sprintf("Source %06d", rand.Intn(1000000))
	}
	source := &models.Source{Name: name}
	if err := tf.DB.DB.Create(source).Error; err != nil {
		return nil, fmt.Errorf("failed to create test source: %w", err)
	}
	return source, nil
}

// CreateTestEmployee creates an employee keyed by a random chat user id
func (tf *TestFixtures) CreateTestEmployee(name string) (*models.Employee, error) {
	if name == "" {
		name = "Test Employee"
	}
	employee := &models.Employee{
		ID:       int64(rand.Intn(1000000000)) + 1,
		Name:     name,
		Username: fmt.Sprintf("user%06d", rand.Intn(1000000)),
	}
	if err := tf.DB.DB.Create(employee).Error; err != nil {
		return nil, fmt.Errorf("failed to create test employee: %w", err)
	}
	return employee, nil
}

// CreateTestReport creates a report tying together the given entities
func (tf *TestFixtures) CreateTestReport(sourceID, countryID, bookmakerID uint, employeeID int64, bet, ret float64, isError bool) (*models.Report, error) {
	report := &models.Report{
		Date:         utils.StartOfDay(utils.UTCNow()),
		SourceID:     sourceID,
		CountryID:    countryID,
		BookmakerID:  bookmakerID,
		EmployeeID:   employeeID,
		BetAmount:    bet,
		ReturnAmount: ret,
		IsError:      isError,
	}
	if err := tf.DB.DB.Create(report).Error; err != nil {
		return nil, fmt.Errorf("failed to create test report: %w", err)
	}
	return report, nil
}

// CreateTestTransaction creates a money movement between the given endpoints
func (tf *TestFixtures) CreateTestTransaction(amount, commission float64, kind string, senderWallet, receiverWallet, senderBookmaker, receiverBookmaker, countryID *uint) (*models.Transaction, error) {
	if kind == "" {
		kind = models.SourceKindBalance
	}
	tx := &models.Transaction{
		Amount:              amount,
		Commission:          commission,
		SourceKind:          kind,
		SenderWalletID:      senderWallet,
		ReceiverWalletID:    receiverWallet,
		SenderBookmakerID:   senderBookmaker,
		ReceiverBookmakerID: receiverBookmaker,
		CountryID:           countryID,
		Timestamp:           utils.UTCNow(),
	}
	if err := tf.DB.DB.Create(tx).Error; err != nil {
		return nil, fmt.Errorf("failed to create test transaction: %w", err)
	}
	return tx, nil
}
