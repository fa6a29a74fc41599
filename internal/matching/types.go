package matching

import "time"

type RankRequest struct {
	JobID           string
	StaffProfileIDs []string
}

type RankScore struct {
	StaffProfileID string  `json:"staffProfileId"`
	Score          float64 `json:"score"`
}

type RankResponse struct {
	Rankings []RankScore `json:"rankings"`
}

// FeedbackRequest carries a 0-5 score for one staff member on one shift.
type FeedbackRequest struct {
	ShiftID        string
	StaffProfileID string
	Score          float64
	Comments       *string
}

type FeedbackResponse struct {
	Accepted bool `json:"accepted"`
}

type FeedbackRecord struct {
	ID             string    `json:"id"`
	ShiftID        string    `json:"shiftId"`
	StaffProfileID string    `json:"staffProfileId"`
	Score          float64   `json:"score"`
	Comments       *string   `json:"comments,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Outcome tags a read result so callers can tell stored data from a
// degraded fallback.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeDegraded Outcome = "degraded"
)

type FeedbackList struct {
	Outcome  Outcome          `json:"outcome"`
	Feedback []FeedbackRecord `json:"feedback"`
}
