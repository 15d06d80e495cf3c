package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hugmood/hugmood/backend/internal/logger"
	"github.com/hugmood/hugmood/backend/internal/models"
	"github.com/hugmood/hugmood/backend/internal/repository"
)

const (
	minMoodScore = 1
	maxMoodScore = 10
)

type moodService struct {
	entryRepo    repository.MoodEntryRepository
	activityRepo repository.ActivityLogRepository
	streakRepo   repository.StreakRepository
	locks        *userLocks
}

// NewMoodService creates a new mood service
func NewMoodService(
	entryRepo repository.MoodEntryRepository,
	activityRepo repository.ActivityLogRepository,
	streakRepo repository.StreakRepository,
) MoodService {
	return &moodService{
		entryRepo:    entryRepo,
		activityRepo: activityRepo,
		streakRepo:   streakRepo,
		locks:        newUserLocks(),
	}
}

// SubmitMoodEntry validates, inserts the entry, and advances the streak.
// The insert and streak update run under the user's lock so concurrent
// submissions from two devices cannot double-increment the streak.
func (s *moodService) SubmitMoodEntry(ctx context.Context, userID string, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error) {
	if req.Score < minMoodScore || req.Score > maxMoodScore {
		return nil, fmt.Errorf("%w: score must be between %d and %d", ErrValidation, minMoodScore, maxMoodScore)
	}

	activities := make([]string, 0, len(req.Activities))
	for _, a := range req.Activities {
		a = strings.TrimSpace(strings.ToLower(a))
		if a != "" {
			activities = append(activities, a)
		}
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	entry := &models.MoodEntry{
		ID:         uuid.New().String(),
		UserID:     userID,
		Score:      req.Score,
		Note:       req.Note,
		IsPublic:   req.IsPublic,
		Activities: activities,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	if err := s.advanceStreak(ctx, userID, created.CreatedAt); err != nil {
		// The submission is one atomic unit; undo the insert so a failed
		// streak write does not leave a half-applied submission behind.
		if delErr := s.entryRepo.Delete(ctx, created.ID); delErr != nil {
			logger.Ctx(ctx).Error("failed to roll back mood entry after streak failure",
				logger.Err(delErr),
				logger.String("entry_id", created.ID),
			)
		}
		return nil, fmt.Errorf("failed to update streak: %w", err)
	}

	return created, nil
}

// advanceStreak applies the calendar-day state machine. Caller holds the
// user's lock.
func (s *moodService) advanceStreak(ctx context.Context, userID string, createdAt time.Time) error {
	record, err := s.streakRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if record == nil {
		record = &models.StreakRecord{UserID: userID}
	}

	day := calendarDay(createdAt)

	switch {
	case record.LastRecordedDate != nil && record.LastRecordedDate.Equal(day):
		// Second entry on the same day; idempotent
		return nil
	case record.LastRecordedDate != nil && day.Sub(*record.LastRecordedDate) == 24*time.Hour:
		record.CurrentStreak++
	default:
		// Gap of two or more days, or first entry ever
		record.CurrentStreak = 1
	}

	if record.CurrentStreak > record.LongestStreak {
		record.LongestStreak = record.CurrentStreak
	}
	record.LastRecordedDate = &day
	record.UpdatedAt = time.Now().UTC()

	_, err = s.streakRepo.Upsert(ctx, record)
	return err
}

// calendarDay truncates an instant to its UTC calendar date
func calendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *moodService) RecordActivity(ctx context.Context, userID string, req *models.RecordActivityRequest) (*models.ActivityLog, error) {
	activityType := strings.TrimSpace(strings.ToLower(req.ActivityType))
	if activityType == "" {
		return nil, fmt.Errorf("%w: activity_type is required", ErrValidation)
	}
	if req.DurationMinutes != nil && *req.DurationMinutes < 0 {
		return nil, fmt.Errorf("%w: duration_minutes cannot be negative", ErrValidation)
	}

	log := &models.ActivityLog{
		ID:              uuid.New().String(),
		UserID:          userID,
		ActivityType:    activityType,
		DurationMinutes: req.DurationMinutes,
		Metadata:        req.Metadata,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.activityRepo.Create(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity log: %w", err)
	}

	return created, nil
}

func (s *moodService) GetStreak(ctx context.Context, userID string) (*models.StreakRecord, error) {
	record, err := s.streakRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get streak record: %w", err)
	}
	if record == nil {
		record = &models.StreakRecord{UserID: userID}
	}
	return record, nil
}
