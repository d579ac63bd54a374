package repository

import (
	"context"

	"github.com/CoriMyp/bot-bugalter/models"
	"gorm.io/gorm"
)

// WalletRepositoryImpl implements WalletRepository interface
type WalletRepositoryImpl struct {
	*BaseRepository[models.Wallet, models.WalletFilter]
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &WalletRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Wallet, models.WalletFilter](db),
	}
}

// ListByCountry lists live wallets scoped to a country
func (r *WalletRepositoryImpl) ListByCountry(ctx context.Context, countryID uint) ([]*models.Wallet, error) {
	db := r.getDB(ctx)
	var wallets []*models.Wallet
	err := r.live(db).Where("country_id = ?", countryID).Find(&wallets).Error
	if err != nil {
		return nil, err
	}
	return wallets, nil
}

// ListByCategory lists live wallets of one category
func (r *WalletRepositoryImpl) ListByCategory(ctx context.Context, category string) ([]*models.Wallet, error) {
	db := r.getDB(ctx)
	var wallets []*models.Wallet
	err := r.live(db).Where("category = ?", category).Find(&wallets).Error
	if err != nil {
		return nil, err
	}
	return wallets, nil
}

// ByFilter retrieves wallets based on filter criteria
func (r *WalletRepositoryImpl) ByFilter(ctx context.Context, filter models.WalletFilter) ([]*models.Wallet, error) {
	db := r.getDB(ctx)
	var wallets []*models.Wallet

	query := db.Model(&models.Wallet{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&wallets).Error; err != nil {
		return nil, err
	}
	return wallets, nil
}

func (r *WalletRepositoryImpl) applyFilter(query *gorm.DB, filter models.WalletFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.CountryID != nil {
		query = query.Where("country_id = ?", *filter.CountryID)
	}
	if filter.IsDeleted != nil {
		query = query.Where("is_deleted = ?", *filter.IsDeleted)
	} else {
		query = query.Where("is_deleted = ?", false)
	}
	return query
}
