package models

import "time"

// Source is a betting traffic source referenced by reports.
type Source struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null;index:idx_sources_name" json:"name"`
	IsDeleted bool      `gorm:"not null;default:false;index:idx_sources_is_deleted" json:"is_deleted"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Reports []Report `gorm:"foreignKey:SourceID" json:"reports,omitempty"`
}

func (Source) TableName() string {
	return "sources"
}

// SourceFilter represents filter criteria for source queries
type SourceFilter struct {
	ID        *uint
	Name      *string
	IsDeleted *bool
}
