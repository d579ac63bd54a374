package models

import "time"

// Source kinds tag which logical bucket a transaction moves money
// through on a bookmaker: capital injections ("deposit") versus
// trading balance movements ("balance"). Wallet balances ignore
// the tag entirely.
const (
	SourceKindDeposit = "deposit"
	SourceKindBalance = "balance"
)

// Transaction is a money movement between two endpoints. Each side is
// at most one of a wallet or a bookmaker; a side left empty represents
// money entering or leaving the operation (e.g. bootstrapping funds).
// Commission is deducted from Amount on the receiving side.
type Transaction struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount     float64 `gorm:"not null" json:"amount"`
	Commission float64 `gorm:"not null;default:0" json:"commission"`
	SourceKind string  `gorm:"size:32;not null;default:'balance';index:idx_transactions_source_kind" json:"source_kind"`

	SenderWalletID      *uint      `gorm:"index:idx_transactions_sender_wallet" json:"sender_wallet_id,omitempty"`
	SenderWallet        *Wallet    `gorm:"foreignKey:SenderWalletID;references:ID" json:"sender_wallet,omitempty"`
	SenderBookmakerID   *uint      `gorm:"index:idx_transactions_sender_bookmaker" json:"sender_bookmaker_id,omitempty"`
	SenderBookmaker     *Bookmaker `gorm:"foreignKey:SenderBookmakerID;references:ID" json:"sender_bookmaker,omitempty"`
	ReceiverWalletID    *uint      `gorm:"index:idx_transactions_receiver_wallet" json:"receiver_wallet_id,omitempty"`
	ReceiverWallet      *Wallet    `gorm:"foreignKey:ReceiverWalletID;references:ID" json:"receiver_wallet,omitempty"`
	ReceiverBookmakerID *uint      `gorm:"index:idx_transactions_receiver_bookmaker" json:"receiver_bookmaker_id,omitempty"`
	ReceiverBookmaker   *Bookmaker `gorm:"foreignKey:ReceiverBookmakerID;references:ID" json:"receiver_bookmaker,omitempty"`

	CountryID *uint    `gorm:"index:idx_transactions_country_id" json:"country_id,omitempty"`
	Country   *Country `gorm:"foreignKey:CountryID;references:ID" json:"country,omitempty"`

	Timestamp time.Time `gorm:"not null;index:idx_transactions_timestamp" json:"timestamp"`
	IsDeleted bool      `gorm:"not null;default:false;index:idx_transactions_is_deleted" json:"is_deleted"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionFilter represents filter criteria for transaction queries
type TransactionFilter struct {
	ID                  *uint
	SourceKind          *string
	SenderWalletID      *uint
	SenderBookmakerID   *uint
	ReceiverWalletID    *uint
	ReceiverBookmakerID *uint
	CountryID           *uint
	After               *time.Time
	Before              *time.Time
	IsDeleted           *bool
}
