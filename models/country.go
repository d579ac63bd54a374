// Package models contains domain entities and business models for the ledger accounting system
package models

import "time"

// Country groups bookmaker profiles and wallets under one market.
// Balances are never stored on the row; they are derived on demand
// from the transaction and report history by the ledger package.
type Country struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"size:255;not null;index:idx_countries_name" json:"name"`
	Commission float64 `gorm:"not null;default:0" json:"commission"`
	Flag       string  `gorm:"size:16" json:"flag"`
	IsDeleted  bool    `gorm:"not null;default:false;index:idx_countries_is_deleted" json:"is_deleted"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Bookmakers []Bookmaker `gorm:"foreignKey:CountryID" json:"bookmakers,omitempty"`
	Wallets    []Wallet    `gorm:"foreignKey:CountryID" json:"wallets,omitempty"`
	Templates  []Template  `gorm:"foreignKey:CountryID" json:"templates,omitempty"`
}

func (Country) TableName() string {
	return "countries"
}

// CountryFilter represents filter criteria for country queries
type CountryFilter struct {
	ID        *uint
	Name      *string
	IsDeleted *bool
}
