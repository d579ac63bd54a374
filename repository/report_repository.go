package repository

import (
	"context"

	"github.com/CoriMyp/bot-bugalter/models"
	"gorm.io/gorm"
)

// ReportRepositoryImpl implements ReportRepository interface
type ReportRepositoryImpl struct {
	*BaseRepository[models.Report, models.ReportFilter]
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &ReportRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Report, models.ReportFilter](db),
	}
}

// Report listings preload the bookmaker relation because the salary
// percentage fallback reads through it.
func (r *ReportRepositoryImpl) listWhere(ctx context.Context, cond string, arg any) ([]*models.Report, error) {
	db := r.getDB(ctx)
	var reports []*models.Report
	err := r.live(db).Preload("Bookmaker").Where(cond, arg).Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// ListByCountry lists live reports filed under a country
func (r *ReportRepositoryImpl) ListByCountry(ctx context.Context, countryID uint) ([]*models.Report, error) {
	return r.listWhere(ctx, "country_id = ?", countryID)
}

// ListByBookmaker lists live reports filed against a bookmaker profile
func (r *ReportRepositoryImpl) ListByBookmaker(ctx context.Context, bookmakerID uint) ([]*models.Report, error) {
	return r.listWhere(ctx, "bookmaker_id = ?", bookmakerID)
}

// ListBySource lists live reports attributed to a traffic source
func (r *ReportRepositoryImpl) ListBySource(ctx context.Context, sourceID uint) ([]*models.Report, error) {
	return r.listWhere(ctx, "source_id = ?", sourceID)
}

// ListByEmployee lists live reports filed by an employee
func (r *ReportRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]*models.Report, error) {
	return r.listWhere(ctx, "employee_id = ?", employeeID)
}

// ListDetailed retrieves reports with all relations preloaded for
// presentation and spreadsheet export.
func (r *ReportRepositoryImpl) ListDetailed(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error) {
	db := r.getDB(ctx)
	var reports []*models.Report

	query := db.Model(&models.Report{}).
		Preload("Bookmaker").
		Preload("Source").
		Preload("Country").
		Preload("Employee")
	query = r.applyFilter(query, filter)

	if err := query.Order("date ASC, id ASC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ByFilter retrieves reports based on filter criteria
func (r *ReportRepositoryImpl) ByFilter(ctx context.Context, filter models.ReportFilter) ([]*models.Report, error) {
	db := r.getDB(ctx)
	var reports []*models.Report

	query := db.Model(&models.Report{}).Preload("Bookmaker")
	query = r.applyFilter(query, filter)

	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepositoryImpl) applyFilter(query *gorm.DB, filter models.ReportFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.SourceID != nil {
		query = query.Where("source_id = ?", *filter.SourceID)
	}
	if filter.CountryID != nil {
		query = query.Where("country_id = ?", *filter.CountryID)
	}
	if filter.BookmakerID != nil {
		query = query.Where("bookmaker_id = ?", *filter.BookmakerID)
	}
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.IsError != nil {
		query = query.Where("is_error = ?", *filter.IsError)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date < ?", *filter.DateTo)
	}
	if filter.IsDeleted != nil {
		query = query.Where("is_deleted = ?", *filter.IsDeleted)
	} else {
		query = query.Where("is_deleted = ?", false)
	}
	return query
}
