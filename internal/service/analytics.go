package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hugmood/hugmood/backend/internal/logger"
	"github.com/hugmood/hugmood/backend/internal/models"
	"github.com/hugmood/hugmood/backend/internal/repository"
)

const (
	// DefaultTimeRangeDays is the analysis window when the caller does
	// not specify one
	DefaultTimeRangeDays = 30

	// MaxTimeRangeDays caps the analysis window
	MaxTimeRangeDays = 365
)

type analyticsService struct {
	entryRepo    repository.MoodEntryRepository
	activityRepo repository.ActivityLogRepository
	streakRepo   repository.StreakRepository
	insights     InsightService
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	entryRepo repository.MoodEntryRepository,
	activityRepo repository.ActivityLogRepository,
	streakRepo repository.StreakRepository,
	insights InsightService,
) AnalyticsService {
	return &analyticsService{
		entryRepo:    entryRepo,
		activityRepo: activityRepo,
		streakRepo:   streakRepo,
		insights:     insights,
	}
}

// GetAnalytics composes the full report: statistics, trend, correlations,
// insights, and recommendations over the requested window. The whole
// computation is read-only against mood and activity history; only the
// insight reconciliation step writes, and its failures degrade rather
// than failing the report.
func (s *analyticsService) GetAnalytics(ctx context.Context, userID string, timeRangeDays int, includeCorrelations bool) (*models.AnalyticsReport, error) {
	if timeRangeDays <= 0 {
		timeRangeDays = DefaultTimeRangeDays
	}
	if timeRangeDays > MaxTimeRangeDays {
		timeRangeDays = MaxTimeRangeDays
	}

	log := logger.Ctx(ctx)
	now := time.Now().UTC()
	startDate := now.AddDate(0, 0, -timeRangeDays)

	entries, err := s.entryRepo.GetByUserIDAndDateRange(ctx, userID, startDate, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}

	stats := calculateStatistics(entries)

	// Trend and correlations are independent reads over the same
	// snapshot; run them concurrently.
	var (
		trend        models.Trend
		correlations []models.CorrelationResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trend = classifyTrend(entries)
		return nil
	})
	if includeCorrelations {
		g.Go(func() error {
			activityLogs, err := s.activityRepo.GetByUserIDAndDateRange(gctx, userID, startDate, now)
			if err != nil {
				return fmt.Errorf("failed to get activity logs: %w", err)
			}
			correlations = computeCorrelations(entries, activityLogs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// A streak read failure degrades to "no streak" rather than failing
	// the whole report
	streak, err := s.streakRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.Warn("failed to get streak record for analytics", logger.Err(err))
		streak = nil
	}

	inputs := ruleInputs{
		stats:        stats,
		trend:        trend,
		correlations: correlations,
		streak:       streak,
	}

	fresh := generateInsights(inputs)
	recommendations := generateRecommendations(inputs)

	insights := s.insights.Reconcile(ctx, userID, fresh)

	return &models.AnalyticsReport{
		Statistics:      stats,
		Trend:           trend,
		Correlations:    correlations,
		Insights:        insights,
		Recommendations: recommendations,
		TimeRangeDays:   timeRangeDays,
		GeneratedAt:     now,
	}, nil
}
