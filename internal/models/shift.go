package models

import "time"

type ShiftStatus string

const (
	ShiftPlanned   ShiftStatus = "PLANNED"
	ShiftOpen      ShiftStatus = "OPEN"
	ShiftFilled    ShiftStatus = "FILLED"
	ShiftCompleted ShiftStatus = "COMPLETED"
	ShiftCancelled ShiftStatus = "CANCELLED"
)

type Shift struct {
	ID             string      `gorm:"primaryKey;size:36" json:"id"`
	OrganisationID string      `gorm:"size:36;index;not null" json:"organisationId"`
	JobID          string      `gorm:"size:36;index;not null" json:"jobId"`
	Role           string      `gorm:"size:100" json:"role"`
	Status         ShiftStatus `gorm:"size:16;default:PLANNED" json:"status"`
	StartsAt       time.Time   `json:"startsAt"`
	EndsAt         time.Time   `json:"endsAt"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`

	Job *Job `gorm:"foreignKey:JobID" json:"-"`
}
