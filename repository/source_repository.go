package repository

import (
	"context"
	"errors"

	"github.com/CoriMyp/bot-bugalter/models"
	"gorm.io/gorm"
)

// SourceRepositoryImpl implements SourceRepository interface
type SourceRepositoryImpl struct {
	*BaseRepository[models.Source, models.SourceFilter]
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *gorm.DB) SourceRepository {
	return &SourceRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Source, models.SourceFilter](db),
	}
}

// ByName finds a live source by exact name
func (r *SourceRepositoryImpl) ByName(ctx context.Context, name string) (*models.Source, error) {
	db := r.getDB(ctx)
	var source models.Source
	err := r.live(db).Where("name = ?", name).Last(&source).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &source, nil
}

// ByFilter retrieves sources based on filter criteria
func (r *SourceRepositoryImpl) ByFilter(ctx context.Context, filter models.SourceFilter) ([]*models.Source, error) {
	db := r.getDB(ctx)
	var sources []*models.Source

	query := db.Model(&models.Source{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&sources).Error; err != nil {
		return nil, err
	}
	return sources, nil
}

func (r *SourceRepositoryImpl) applyFilter(query *gorm.DB, filter models.SourceFilter) *gorm.DB {
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
