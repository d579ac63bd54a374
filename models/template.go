package models

import "time"

// Template is a bookmaker brand under a country. Bookmakers created
// from a template copy its EmployeePercentage and name at creation
// time; later template edits do not propagate.
type Template struct {
	ID                 uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string   `gorm:"size:255;not null;index:idx_templates_name" json:"name"`
	CountryID          uint     `gorm:"not null;index:idx_templates_country_id" json:"country_id"`
	Country            *Country `gorm:"foreignKey:CountryID;references:ID" json:"country,omitempty"`
	EmployeePercentage float64  `gorm:"not null;default:0" json:"employee_percentage"`
	IsDeleted          bool     `gorm:"not null;default:false;index:idx_templates_is_deleted" json:"is_deleted"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Bookmakers []Bookmaker `gorm:"foreignKey:TemplateID" json:"bookmakers,omitempty"`
}

func (Template) TableName() string {
	return "templates"
}

// TemplateFilter represents filter criteria for template queries
type TemplateFilter struct {
	ID        *uint
	Name      *string
	CountryID *uint
	IsDeleted *bool
}
