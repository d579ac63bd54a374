package models

import "time"

// Bookmaker is a betting profile under a country. Name is the profile
// login, DisplayName is the brand name inherited from the template at
// creation time. SalaryPercentage is the default employee cut applied
// to reports that carry no override.
type Bookmaker struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string     `gorm:"size:255;not null;index:idx_bookmakers_name" json:"name"`
	DisplayName      string     `gorm:"size:255;not null;index:idx_bookmakers_display_name" json:"display_name"`
	CountryID        uint       `gorm:"not null;index:idx_bookmakers_country_id" json:"country_id"`
	Country          *Country   `gorm:"foreignKey:CountryID;references:ID" json:"country,omitempty"`
	TemplateID       *uint      `gorm:"index:idx_bookmakers_template_id" json:"template_id,omitempty"`
	Template         *Template  `gorm:"foreignKey:TemplateID;references:ID" json:"template,omitempty"`
	SalaryPercentage float64    `gorm:"not null;default:0" json:"salary_percentage"`
	IsActive         bool       `gorm:"not null;default:true;index:idx_bookmakers_is_active" json:"is_active"`
	DeactivatedAt    *time.Time `json:"deactivated_at,omitempty"`
	IsDeleted        bool       `gorm:"not null;default:false;index:idx_bookmakers_is_deleted" json:"is_deleted"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Reports []Report `gorm:"foreignKey:BookmakerID" json:"reports,omitempty"`
}

func (Bookmaker) TableName() string {
	return "bookmakers"
}

// BookmakerFilter represents filter criteria for bookmaker queries
type BookmakerFilter struct {
	ID          *uint
	Name        *string
	DisplayName *string
	CountryID   *uint
	TemplateID  *uint
	IsActive    *bool
	IsDeleted   *bool
}
