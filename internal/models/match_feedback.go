package models

import "time"

// MatchFeedback records how a staff member performed on a shift. Score is
// stored on a 0-100 scale (submitted 0-5 score times 20).
type MatchFeedback struct {
	ID             string    `gorm:"primaryKey;size:36"`
	OrganisationID string    `gorm:"size:36;index:idx_feedback_org_shift;not null"`
	ShiftID        string    `gorm:"size:36;index:idx_feedback_org_shift;not null"`
	StaffProfileID string    `gorm:"size:36;index;not null"`
	Score          int       `gorm:"not null"`
	Comment        *string   `gorm:"type:text"`
	CreatedAt      time.Time
}

func (MatchFeedback) TableName() string { return "match_feedback" }
