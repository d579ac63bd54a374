package dto

import "time"

// CreateTransactionRequest registers a money movement. AmountReceived,
// when set, lets the caller state what actually landed on the receiving
// side; the difference becomes the commission.
type CreateTransactionRequest struct {
	Amount              float64  `json:"amount" validate:"required,gt=0"`
	AmountReceived      *float64 `json:"amount_received,omitempty" validate:"omitempty,gte=0"`
	SourceKind          string   `json:"source_kind" validate:"required,oneof=deposit balance"`
	SenderWalletID      *uint    `json:"sender_wallet_id,omitempty"`
	SenderBookmakerID   *uint    `json:"sender_bookmaker_id,omitempty"`
	ReceiverWalletID    *uint    `json:"receiver_wallet_id,omitempty"`
	ReceiverBookmakerID *uint    `json:"receiver_bookmaker_id,omitempty"`
	CountryID           *uint    `json:"country_id,omitempty"`
	Timestamp           string   `json:"timestamp,omitempty"`
}

// TransactionDTO is the presentation shape of a stored transaction
type TransactionDTO struct {
	ID                  uint      `json:"id"`
	Amount              float64   `json:"amount"`
	Commission          float64   `json:"commission"`
	RealAmount          float64   `json:"real_amount"`
	SourceKind          string    `json:"source_kind"`
	SenderWalletID      *uint     `json:"sender_wallet_id,omitempty"`
	SenderBookmakerID   *uint     `json:"sender_bookmaker_id,omitempty"`
	ReceiverWalletID    *uint     `json:"receiver_wallet_id,omitempty"`
	ReceiverBookmakerID *uint     `json:"receiver_bookmaker_id,omitempty"`
	CountryID           *uint     `json:"country_id,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}
