package repository

import (
	"context"

	"github.com/CoriMyp/bot-bugalter/models"
	"gorm.io/gorm"
)

// TransactionRepositoryImpl implements TransactionRepository interface
type TransactionRepositoryImpl struct {
	*BaseRepository[models.Transaction, models.TransactionFilter]
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &TransactionRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Transaction, models.TransactionFilter](db),
	}
}

// ListByCountry lists live transactions attributed to a country
func (r *TransactionRepositoryImpl) ListByCountry(ctx context.Context, countryID uint) ([]*models.Transaction, error) {
	db := r.getDB(ctx)
	var transactions []*models.Transaction
	err := r.live(db).Where("country_id = ?", countryID).Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// ListByWallet returns the transfers into and out of one wallet,
// already split by direction for balance derivation.
func (r *TransactionRepositoryImpl) ListByWallet(ctx context.Context, walletID uint) (incoming, outgoing []*models.Transaction, err error) {
	db := r.getDB(ctx)

	err = r.live(db).Where("receiver_wallet_id = ?", walletID).Find(&incoming).Error
	if err != nil {
		return nil, nil, err
	}
	err = r.live(db).Where("sender_wallet_id = ?", walletID).Find(&outgoing).Error
	if err != nil {
		return nil, nil, err
	}
	return incoming, outgoing, nil
}

// ListByBookmaker returns the transfers a bookmaker profile sent and
// received, split by direction.
func (r *TransactionRepositoryImpl) ListByBookmaker(ctx context.Context, bookmakerID uint) (sent, received []*models.Transaction, err error) {
	db := r.getDB(ctx)

	err = r.live(db).Where("sender_bookmaker_id = ?", bookmakerID).Find(&sent).Error
	if err != nil {
		return nil, nil, err
	}
	err = r.live(db).Where("receiver_bookmaker_id = ?", bookmakerID).Find(&received).Error
	if err != nil {
		return nil, nil, err
	}
	return sent, received, nil
}

// ByFilter retrieves transactions based on filter criteria
func (r *TransactionRepositoryImpl) ByFilter(ctx context.Context, filter models.TransactionFilter) ([]*models.Transaction, error) {
	db := r.getDB(ctx)
	var transactions []*models.Transaction

	query := db.Model(&models.Transaction{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *TransactionRepositoryImpl) applyFilter(query *gorm.DB, filter models.TransactionFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.SourceKind != nil {
		query = query.Where("source_kind = ?", *filter.SourceKind)
	}
	if filter.SenderWalletID != nil {
		query = query.Where("sender_wallet_id = ?", *filter.SenderWalletID)
	}
	if filter.SenderBookmakerID != nil {
		query = query.Where("sender_bookmaker_id = ?", *filter.SenderBookmakerID)
	}
	if filter.ReceiverWalletID != nil {
		query = query.Where("receiver_wallet_id = ?", *filter.ReceiverWalletID)
	}
	if filter.ReceiverBookmakerID != nil {
		query = query.Where("receiver_bookmaker_id = ?", *filter.ReceiverBookmakerID)
	}
	if filter.CountryID != nil {
		query = query.Where("country_id = ?", *filter.CountryID)
	}
	if filter.After != nil {
		query = query.Where("timestamp >= ?", *filter.After)
	}
	if filter.Before != nil {
		query = query.Where("timestamp < ?", *filter.Before)
	}
	if filter.IsDeleted != nil {
		query = query.Where("is_deleted = ?", *filter.IsDeleted)
	} else {
		query = query.Where("is_deleted = ?", false)
	}
	return query
}
