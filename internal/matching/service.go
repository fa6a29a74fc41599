// Package matching ranks candidate staff for a job and records feedback on
// completed matches.
package matching

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"eventon/internal/metrics"
	"eventon/internal/models"
	"eventon/internal/store"
)

// Store is the persistence the service needs. Every call is best-effort.
type Store interface {
	FindJob(ctx context.Context, orgID, jobID string) (models.Job, error)
	CreateFeedback(ctx context.Context, fb *models.MatchFeedback) error
	ListFeedback(ctx context.Context, orgID, shiftID string) ([]models.MatchFeedback, error)
}

type Service struct {
	store   Store
	log     *zap.Logger
	metrics *metrics.Metrics
	timeout time.Duration
}

// NewService builds a Service. timeout bounds each store call; zero leaves
// calls bounded only by the caller's context.
func NewService(st Store, log *zap.Logger, m *metrics.Metrics, timeout time.Duration) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, log: log.Named("matching"), metrics: m, timeout: timeout}
}

// Rank scores req.StaffProfileIDs by input position. The job lookup only
// feeds logging; its result never changes the rankings.
func (s *Service) Rank(ctx context.Context, orgID string, req RankRequest) RankResponse {
	s.lookupJob(ctx, orgID, req.JobID)

	s.metrics.RankServed(len(req.StaffProfileIDs))
	return RankResponse{Rankings: Score(req.StaffProfileIDs)}
}

// Score assigns (N-i)/N rounded to two decimals to the candidate at index i.
func Score(ids []string) []RankScore {
	n := len(ids)
	out := make([]RankScore, n)
	for i, id := range ids {
		out[i] = RankScore{
			StaffProfileID: id,
			Score:          round2(float64(n-i) / float64(n)),
		}
	}
	return out
}

// SubmitFeedback persists the feedback and always accepts it; a failed write
// is logged and counted, never returned.
func (s *Service) SubmitFeedback(ctx context.Context, orgID string, req FeedbackRequest) FeedbackResponse {
	fb := &models.MatchFeedback{
		OrganisationID: orgID,
		ShiftID:        req.ShiftID,
		StaffProfileID: req.StaffProfileID,
		Score:          int(math.Round(req.Score * 20)),
		Comment:        req.Comments,
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	persisted := true
	if err := s.store.CreateFeedback(ctx, fb); err != nil {
		persisted = false
		s.metrics.Degraded("feedback_write")
		s.log.Warn("unable to persist match feedback",
			zap.Error(err),
			zap.String("org_id", orgID),
			zap.String("shift_id", req.ShiftID),
		)
	}
	s.metrics.FeedbackAccepted(persisted)

	return FeedbackResponse{Accepted: true}
}

// ListFeedback returns stored feedback on the 0-5 scale. A store failure
// yields an empty, degraded list rather than an error.
func (s *Service) ListFeedback(ctx context.Context, orgID, shiftID string) FeedbackList {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	rows, err := s.store.ListFeedback(ctx, orgID, shiftID)
	if err != nil {
		s.metrics.Degraded("feedback_list")
		s.log.Warn("feedback lookup failed", zap.Error(err), zap.String("org_id", orgID))
		return FeedbackList{Outcome: OutcomeDegraded, Feedback: []FeedbackRecord{}}
	}

	out := make([]FeedbackRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, FeedbackRecord{
			ID:             r.ID,
			ShiftID:        r.ShiftID,
			StaffProfileID: r.StaffProfileID,
			Score:          float64(r.Score) / 20,
			Comments:       r.Comment,
			CreatedAt:      r.CreatedAt,
		})
	}
	return FeedbackList{Outcome: OutcomeOK, Feedback: out}
}

func (s *Service) lookupJob(ctx context.Context, orgID, jobID string) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	_, err := s.store.FindJob(ctx, orgID, jobID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		s.log.Debug("ranking requested for unknown job", zap.String("org_id", orgID), zap.String("job_id", jobID))
	default:
		s.metrics.Degraded("job_lookup")
		s.log.Warn("job lookup failed during ranking", zap.Error(err), zap.String("org_id", orgID))
	}
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
