package repository

import (
	"context"
	"time"

	"github.com/hugmood/hugmood/backend/internal/models"
)

// MoodEntryRepository defines the interface for mood entry data access
type MoodEntryRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error)
	Delete(ctx context.Context, id string) error
	// GetByUserIDAndDateRange returns entries newest first
	GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.MoodEntry, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error)
}

// ActivityLogRepository defines the interface for activity log data access
type ActivityLogRepository interface {
	Create(ctx context.Context, log *models.ActivityLog) (*models.ActivityLog, error)
	GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.ActivityLog, error)
}

// StreakRepository defines the interface for streak record data access
type StreakRepository interface {
	// GetByUserID returns nil, nil when the user has no streak record yet
	GetByUserID(ctx context.Context, userID string) (*models.StreakRecord, error)
	Upsert(ctx context.Context, record *models.StreakRecord) (*models.StreakRecord, error)
}

// InsightRepository defines the interface for insight data access
type InsightRepository interface {
	Create(ctx context.Context, insight *models.Insight) (*models.Insight, error)
	// GetValidByUserID returns non-expired insights, newest first
	GetValidByUserID(ctx context.Context, userID string) ([]models.Insight, error)
	// GetByID returns nil, nil when no insight with that id exists
	GetByID(ctx context.Context, id string) (*models.Insight, error)
	MarkRead(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, userID string) error
}
