package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/CoriMyp/bot-bugalter/models"
	"gorm.io/gorm"
)

// HistoryRepositoryImpl implements HistoryRepository interface
type HistoryRepositoryImpl struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &HistoryRepositoryImpl{db: db}
}

func (r *HistoryRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(TxContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}

// AppendOperation writes one audit trail entry
func (r *HistoryRepositoryImpl) AppendOperation(ctx context.Context, entry *models.OperationHistory) error {
	db := r.getDB(ctx)
	if err := db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append operation history: %w", err)
	}
	return nil
}

// AppendCommission writes one commission log entry
func (r *HistoryRepositoryImpl) AppendCommission(ctx context.Context, entry *models.CommissionHistory) error {
	db := r.getDB(ctx)
	if err := db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append commission history: %w", err)
	}
	return nil
}

// LastOperations retrieves the most recent audit entries, newest first
func (r *HistoryRepositoryImpl) LastOperations(ctx context.Context, limit int) ([]*models.OperationHistory, error) {
	db := r.getDB(ctx)
	var entries []*models.OperationHistory
	err := db.Model(&models.OperationHistory{}).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list operation history: %w", err)
	}
	return entries, nil
}

// LastCommissions retrieves the most recent commission entries, newest first
func (r *HistoryRepositoryImpl) LastCommissions(ctx context.Context, limit int) ([]*models.CommissionHistory, error) {
	db := r.getDB(ctx)
	var entries []*models.CommissionHistory
	err := db.Model(&models.CommissionHistory{}).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list commission history: %w", err)
	}
	return entries, nil
}

// OperationsByPeriod retrieves audit entries within [from, until)
func (r *HistoryRepositoryImpl) OperationsByPeriod(ctx context.Context, from, until time.Time) ([]*models.OperationHistory, error) {
	db := r.getDB(ctx)
	var entries []*models.OperationHistory
	err := db.Model(&models.OperationHistory{}).
		Where("date >= ? AND date < ?", from, until).
		Order("date ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list operation history by period: %w", err)
	}
	return entries, nil
}

// CommissionsByPeriod retrieves commission entries within [from, until)
func (r *HistoryRepositoryImpl) CommissionsByPeriod(ctx context.Context, from, until time.Time) ([]*models.CommissionHistory, error) {
	db := r.getDB(ctx)
	var entries []*models.CommissionHistory
	err := db.Model(&models.CommissionHistory{}).
		Where("date >= ? AND date < ?", from, until).
		Order("date ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list commission history by period: %w", err)
	}
	return entries, nil
}
