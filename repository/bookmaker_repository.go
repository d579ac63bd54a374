package repository

import (
	"context"
	"errors"

	"github.com/CoriMyp/bot-bugalter/models"
	"gorm.io/gorm"
)

// BookmakerRepositoryImpl implements BookmakerRepository interface
type BookmakerRepositoryImpl struct {
	*BaseRepository[models.Bookmaker, models.BookmakerFilter]
}

// NewBookmakerRepository creates a new bookmaker repository
func NewBookmakerRepository(db *gorm.DB) BookmakerRepository {
	return &BookmakerRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Bookmaker, models.BookmakerFilter](db),
	}
}

// ListByCountry lists live bookmakers under a country
func (r *BookmakerRepositoryImpl) ListByCountry(ctx context.Context, countryID uint) ([]*models.Bookmaker, error) {
	db := r.getDB(ctx)
	var bookmakers []*models.Bookmaker
	err := r.live(db).Where("country_id = ?", countryID).Find(&bookmakers).Error
	if err != nil {
		return nil, err
	}
	return bookmakers, nil
}

// ListByTemplate lists live bookmakers created from a template
func (r *BookmakerRepositoryImpl) ListByTemplate(ctx context.Context, templateID uint) ([]*models.Bookmaker, error) {
	db := r.getDB(ctx)
	var bookmakers []*models.Bookmaker
	err := r.live(db).Where("template_id = ?", templateID).Find(&bookmakers).Error
	if err != nil {
		return nil, err
	}
	return bookmakers, nil
}

// ByLookup resolves the report ingestion lookup: profile login name,
// display name and country, restricted to active live profiles.
func (r *BookmakerRepositoryImpl) ByLookup(ctx context.Context, name, displayName string, countryID uint) (*models.Bookmaker, error) {
	db := r.getDB(ctx)
	var bookmaker models.Bookmaker
	err := r.live(db).
		Where("name = ? AND display_name = ? AND country_id = ? AND is_active = ?",
			name, displayName, countryID, true).
		Last(&bookmaker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bookmaker, nil
}

// ByFilter retrieves bookmakers based on filter criteria
func (r *BookmakerRepositoryImpl) ByFilter(ctx context.Context, filter models.BookmakerFilter) ([]*models.Bookmaker, error) {
	db := r.getDB(ctx)
	var bookmakers []*models.Bookmaker

	query := db.Model(&models.Bookmaker{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&bookmakers).Error; err != nil {
		return nil, err
	}
	return bookmakers, nil
}

func (r *BookmakerRepositoryImpl) applyFilter(query *gorm.DB, filter models.BookmakerFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.DisplayName != nil {
		query = query.Where("display_name = ?", *filter.DisplayName)
	}
	if filter.CountryID != nil {
		query = query.Where("country_id = ?", *filter.CountryID)
	}
	if filter.TemplateID != nil {
		query = query.Where("template_id = ?", *filter.TemplateID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsDeleted != nil {
		query = query.Where("is_deleted = ?", *filter.IsDeleted)
	} else {
		query = query.Where("is_deleted = ?", false)
	}
	return query
}
