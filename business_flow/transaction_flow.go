// Package businessflow contains the core business logic and use cases for money movements
package businessflow

import (
	"context"
	"fmt"

	"github.com/CoriMyp/bot-bugalter/app/dto"
	"github.com/CoriMyp/bot-bugalter/ledger"
	"github.com/CoriMyp/bot-bugalter/models"
	"github.com/CoriMyp/bot-bugalter/repository"
	"github.com/CoriMyp/bot-bugalter/utils"
	"gorm.io/gorm"
)

// TransactionFlow defines operations for registering and removing money movements
type TransactionFlow interface {
	Create(ctx context.Context, req *dto.CreateTransactionRequest, actor *Actor) (*dto.TransactionDTO, error)
	ByID(ctx context.Context, id uint) (*dto.TransactionDTO, error)
	ListByCountry(ctx context.Context, countryID uint) ([]dto.TransactionDTO, error)
	Delete(ctx context.Context, id uint, actor *Actor) error
}

// TransactionFlowImpl implements TransactionFlow
type TransactionFlowImpl struct {
	transactionRepo repository.TransactionRepository
	historyRepo     repository.HistoryRepository
	db              *gorm.DB
}

// NewTransactionFlow constructs a TransactionFlow
func NewTransactionFlow(
	transactionRepo repository.TransactionRepository,
	historyRepo repository.HistoryRepository,
	db *gorm.DB,
) TransactionFlow {
	return &TransactionFlowImpl{
		transactionRepo: transactionRepo,
		historyRepo:     historyRepo,
		db:              db,
	}
}

// Create registers a money movement. When the caller states the amount
// that actually landed on the receiving side, the difference is stored
// as the commission and logged separately.
func (f *TransactionFlowImpl) Create(ctx context.Context, req *dto.CreateTransactionRequest, actor *Actor) (*dto.TransactionDTO, error) {
	if req.Amount <= 0 {
		return nil, NewBusinessError("CREATE_TRANSACTION_VALIDATION_FAILED", "Amount must be positive", ErrAmountNotPositive)
	}
	if req.SenderWalletID == nil && req.SenderBookmakerID == nil &&
		req.ReceiverWalletID == nil && req.ReceiverBookmakerID == nil {
		return nil, NewBusinessError("CREATE_TRANSACTION_VALIDATION_FAILED", "Transaction needs at least one endpoint", ErrTransactionNoEndpoint)
	}

	var commission float64
	if req.AmountReceived != nil {
		commission = req.Amount - *req.AmountReceived
		if commission < 0 || commission > req.Amount {
			return nil, NewBusinessError("CREATE_TRANSACTION_VALIDATION_FAILED", "Received amount is out of range", ErrCommissionNegative)
		}
	}

	timestamp := utils.UTCNow()
	if req.Timestamp != "" {
		parsed, err := utils.ParseDate(req.Timestamp)
		if err != nil {
			return nil, NewBusinessError("INVALID_DATE", "Timestamp is not parsable", err)
		}
		timestamp = parsed
	}

	transaction := &models.Transaction{
		Amount:              req.Amount,
		Commission:          commission,
		SourceKind:          req.SourceKind,
		SenderWalletID:      req.SenderWalletID,
		SenderBookmakerID:   req.SenderBookmakerID,
		ReceiverWalletID:    req.ReceiverWalletID,
		ReceiverBookmakerID: req.ReceiverBookmakerID,
		CountryID:           req.CountryID,
		Timestamp:           timestamp,
	}

	err := repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.transactionRepo.Save(txCtx, transaction); err != nil {
			return err
		}
		description := fmt.Sprintf("transaction %d: %.2f (%s)", transaction.ID, req.Amount, req.SourceKind)
		if err := recordOperation(txCtx, f.historyRepo, actor, models.OperationTransactionCreated, description); err != nil {
			return err
		}
		if commission != 0 {
			return f.historyRepo.AppendCommission(txCtx, &models.CommissionHistory{
				Date:        timestamp,
				Actor:       actor.String(),
				Commission:  commission,
				Kind:        models.CommissionKindTransaction,
				Description: fmt.Sprintf("transaction %d", transaction.ID),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := toTransactionDTO(*transaction)
	return &out, nil
}

// ByID retrieves one transaction
func (f *TransactionFlowImpl) ByID(ctx context.Context, id uint) (*dto.TransactionDTO, error) {
	transaction, err := f.transactionRepo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, NewBusinessError("TRANSACTION_NOT_FOUND", "Transaction not found", ErrTransactionNotFound)
	}
	out := toTransactionDTO(*transaction)
	return &out, nil
}

// ListByCountry lists live transactions attributed to a country
func (f *TransactionFlowImpl) ListByCountry(ctx context.Context, countryID uint) ([]dto.TransactionDTO, error) {
	transactions, err := f.transactionRepo.ListByCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionDTO, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, toTransactionDTO(*t))
	}
	return out, nil
}

// Delete soft-deletes a transaction; every derived balance recomputes
// without it from then on.
func (f *TransactionFlowImpl) Delete(ctx context.Context, id uint, actor *Actor) error {
	transaction, err := f.transactionRepo.ByID(ctx, id)
	if err != nil {
		return err
	}
	if transaction == nil {
		return NewBusinessError("TRANSACTION_NOT_FOUND", "Transaction not found", ErrTransactionNotFound)
	}

	return repository.WithTransaction(ctx, f.db, func(txCtx context.Context) error {
		if err := f.transactionRepo.SoftDelete(txCtx, id); err != nil {
			return err
		}
		return recordOperation(txCtx, f.historyRepo, actor, models.OperationTransactionDeleted,
			fmt.Sprintf("transaction %d deleted", id))
	})
}

func toTransactionDTO(t models.Transaction) dto.TransactionDTO {
	return dto.TransactionDTO{
		ID:                  t.ID,
		Amount:              t.Amount,
		Commission:          t.Commission,
		RealAmount:          ledger.RealAmount(t),
		SourceKind:          t.SourceKind,
		SenderWalletID:      t.SenderWalletID,
		SenderBookmakerID:   t.SenderBookmakerID,
		ReceiverWalletID:    t.ReceiverWalletID,
		ReceiverBookmakerID: t.ReceiverBookmakerID,
		CountryID:           t.CountryID,
		Timestamp:           t.Timestamp,
	}
}
