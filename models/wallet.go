package models

import "time"

// Wallet categories. A country wallet belongs to exactly one country;
// a general wallet serves the whole operation and has no country.
const (
	WalletCategoryGeneral = "general"
	WalletCategoryCountry = "country"
)

// Wallet holds operational funds. Deposit is the base amount the wallet
// was opened with; Adjustment is an explicit manual correction applied
// on top of the derived transaction history.
type Wallet struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string   `gorm:"size:255;not null" json:"name"`
	Category   string   `gorm:"size:32;not null;default:'general';index:idx_wallets_category" json:"category"`
	CountryID  *uint    `gorm:"index:idx_wallets_country_id" json:"country_id,omitempty"`
	Country    *Country `gorm:"foreignKey:CountryID;references:ID" json:"country,omitempty"`
	Deposit    float64  `gorm:"not null;default:0" json:"deposit"`
	Adjustment float64  `gorm:"not null;default:0" json:"adjustment"`
	IsDeleted  bool     `gorm:"not null;default:false;index:idx_wallets_is_deleted" json:"is_deleted"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}

// WalletFilter represents filter criteria for wallet queries
type WalletFilter struct {
	ID        *uint
	Name      *string
	Category  *string
	CountryID *uint
	IsDeleted *bool
}
