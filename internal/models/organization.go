package models

import (
	"time"

	"gorm.io/datatypes"
)

// Organization is the tenant boundary every scoped resource belongs to.
type Organization struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Name      string         `gorm:"size:200;not null" json:"name"`
	Slug      string         `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Settings  datatypes.JSON `gorm:"type:json" json:"settings,omitempty"` // matching preferences etc.
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`

	// Relations
	Jobs   []Job   `gorm:"foreignKey:OrganisationID" json:"-"`
	Shifts []Shift `gorm:"foreignKey:OrganisationID" json:"-"`
}
