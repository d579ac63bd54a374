package repository

import (
	"context"
	"errors"

	"github.com/CoriMyp/bot-bugalter/models"
	"gorm.io/gorm"
)

// CountryRepositoryImpl implements CountryRepository interface
type CountryRepositoryImpl struct {
	*BaseRepository[models.Country, models.CountryFilter]
}

// NewCountryRepository creates a new country repository
func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &CountryRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Country, models.CountryFilter](db),
	}
}

// ByName finds a live country by exact name
func (r *CountryRepositoryImpl) ByName(ctx context.Context, name string) (*models.Country, error) {
	db := r.getDB(ctx)
	var country models.Country
	err := r.live(db).Where("name = ?", name).Last(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

// ByFilter retrieves countries based on filter criteria
func (r *CountryRepositoryImpl) ByFilter(ctx context.Context, filter models.CountryFilter) ([]*models.Country, error) {
	db := r.getDB(ctx)
	var countries []*models.Country

	query := db.Model(&models.Country{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *CountryRepositoryImpl) applyFilter(query *gorm.DB, filter models.CountryFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.IsDeleted != nil {
		query = query.Where("is_deleted = ?", *filter.IsDeleted)
	} else {
		query = query.Where("is_deleted = ?", false)
	}
	return query
}
