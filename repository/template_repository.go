package repository

import (
	"context"
	"errors"

	"github.com/CoriMyp/bot-bugalter/models"
	"gorm.io/gorm"
)

// TemplateRepositoryImpl implements TemplateRepository interface
type TemplateRepositoryImpl struct {
	*BaseRepository[models.Template, models.TemplateFilter]
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &TemplateRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Template, models.TemplateFilter](db),
	}
}

// ListByCountry lists live templates under a country
func (r *TemplateRepositoryImpl) ListByCountry(ctx context.Context, countryID uint) ([]*models.Template, error) {
	db := r.getDB(ctx)
	var templates []*models.Template
	err := r.live(db).Where("country_id = ?", countryID).Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// ByNameAndCountry finds a live template by brand name within a country
func (r *TemplateRepositoryImpl) ByNameAndCountry(ctx context.Context, name string, countryID uint) (*models.Template, error) {
	db := r.getDB(ctx)
	var template models.Template
	err := r.live(db).Where("name = ? AND country_id = ?", name, countryID).Last(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

// ByFilter retrieves templates based on filter criteria
func (r *TemplateRepositoryImpl) ByFilter(ctx context.Context, filter models.TemplateFilter) ([]*models.Template, error) {
	db := r.getDB(ctx)
	var templates []*models.Template

	query := db.Model(&models.Template{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *TemplateRepositoryImpl) applyFilter(query *gorm.DB, filter models.TemplateFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
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
