// Package store is the gorm-backed persistence used by the matching service.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventon/internal/models"
)

var (
	ErrNotFound    = errors.New("store: not found")
	ErrUnavailable = errors.New("store: database unavailable")
)

// Store wraps a *gorm.DB. A Store built from a nil handle answers every call
// with ErrUnavailable, which lets the API run with the database down.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindJob(ctx context.Context, orgID, jobID string) (models.Job, error) {
	if s.db == nil {
		return models.Job{}, ErrUnavailable
	}
	var job models.Job
	err := s.db.WithContext(ctx).
		Where("id = ? AND organisation_id = ?", jobID, orgID).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Job{}, ErrNotFound
	}
	if err != nil {
		return models.Job{}, fmt.Errorf("find job %s: %w", jobID, err)
	}
	return job, nil
}

// CreateFeedback inserts fb, assigning an id when it has none.
func (s *Store) CreateFeedback(ctx context.Context, fb *models.MatchFeedback) error {
	if s.db == nil {
		return ErrUnavailable
	}
	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(fb).Error; err != nil {
		return fmt.Errorf("create match feedback: %w", err)
	}
	return nil
}

// ListFeedback returns feedback for orgID, newest first, optionally narrowed
// to one shift.
func (s *Store) ListFeedback(ctx context.Context, orgID, shiftID string) ([]models.MatchFeedback, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	q := s.db.WithContext(ctx).Where("organisation_id = ?", orgID)
	if shiftID != "" {
		q = q.Where("shift_id = ?", shiftID)
	}
	var out []models.MatchFeedback
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list match feedback: %w", err)
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrUnavailable
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
