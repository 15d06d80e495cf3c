package service

import (
	"context"

	"github.com/hugmood/hugmood/backend/internal/models"
)

// MoodService defines the interface for mood submission business logic
type MoodService interface {
	// SubmitMoodEntry inserts the entry and updates the caller's streak
	// as one atomic unit, serialized per user
	SubmitMoodEntry(ctx context.Context, userID string, req *models.CreateMoodEntryRequest) (*models.MoodEntry, error)
	RecordActivity(ctx context.Context, userID string, req *models.RecordActivityRequest) (*models.ActivityLog, error)
	GetStreak(ctx context.Context, userID string) (*models.StreakRecord, error)
}

// AnalyticsService defines the interface for analytics report computation
type AnalyticsService interface {
	GetAnalytics(ctx context.Context, userID string, timeRangeDays int, includeCorrelations bool) (*models.AnalyticsReport, error)
}

// InsightService defines the interface for insight persistence and queries
type InsightService interface {
	// Reconcile deduplicates freshly generated insights against persisted
	// non-expired ones; an existing insight of the same type wins
	Reconcile(ctx context.Context, userID string, fresh []models.Insight) []models.Insight
	ListInsights(ctx context.Context, userID string, limit, offset int) ([]models.Insight, error)
	MarkInsightRead(ctx context.Context, userID, insightID string) error
}
