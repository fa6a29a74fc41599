package models

import (
	"time"

	"gorm.io/datatypes"
)

type JobStatus string

const (
	JobDraft      JobStatus = "DRAFT"
	JobOpen       JobStatus = "OPEN"
	JobInProgress JobStatus = "IN_PROGRESS"
	JobCompleted  JobStatus = "COMPLETED"
	JobCancelled  JobStatus = "CANCELLED"
	JobArchived   JobStatus = "ARCHIVED"
)

type Job struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	OrganisationID string         `gorm:"size:36;index;not null" json:"organisationId"`
	ClientID       *string        `gorm:"size:36;index" json:"clientId,omitempty"`
	Title          string         `gorm:"size:200;not null" json:"title"`
	Status         JobStatus      `gorm:"size:16;default:DRAFT" json:"status"`
	Location       string         `gorm:"size:255" json:"location,omitempty"`
	Skills         datatypes.JSON `gorm:"type:json" json:"skills,omitempty"` // e.g. ["bartender","forklift"]
	StartsAt       *time.Time     `json:"startsAt,omitempty"`
	EndsAt         *time.Time     `json:"endsAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`

	Org    *Organization `gorm:"foreignKey:OrganisationID" json:"-"`
	Shifts []Shift       `gorm:"foreignKey:JobID" json:"-"`
}
