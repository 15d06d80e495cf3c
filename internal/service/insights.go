package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hugmood/hugmood/backend/internal/logger"
	"github.com/hugmood/hugmood/backend/internal/models"
	"github.com/hugmood/hugmood/backend/internal/repository"
)

// InsightTTL is the rolling expiry applied to newly persisted insights
const InsightTTL = 7 * 24 * time.Hour

type insightService struct {
	insightRepo repository.InsightRepository
	locks       *userLocks
}

// NewInsightService creates a new insight service
func NewInsightService(insightRepo repository.InsightRepository) InsightService {
	return &insightService{
		insightRepo: insightRepo,
		locks:       newUserLocks(),
	}
}

// Reconcile enforces the at-most-one-non-expired-insight-per-type
// invariant. An existing persisted insight of the same type wins,
// keeping its id and read state; new types are persisted with a rolling
// expiry. Persistence failures degrade: the computed insight is still
// returned, just unpersisted.
func (s *insightService) Reconcile(ctx context.Context, userID string, fresh []models.Insight) []models.Insight {
	if len(fresh) == 0 {
		return []models.Insight{}
	}

	log := logger.Ctx(ctx)

	unlock := s.locks.Lock(userID)
	defer unlock()

	// Best-effort sweep of expired rows so the table doesn't accumulate
	// dead insights; the expiry filter on reads makes this non-critical
	if err := s.insightRepo.DeleteExpired(ctx, userID); err != nil {
		log.Warn("failed to delete expired insights", logger.Err(err))
	}

	existing := make(map[models.InsightType]models.Insight)
	persisted, err := s.insightRepo.GetValidByUserID(ctx, userID)
	if err != nil {
		log.Warn("failed to load persisted insights; returning computed set", logger.Err(err))
	} else {
		for _, insight := range persisted {
			if _, ok := existing[insight.InsightType]; !ok {
				existing[insight.InsightType] = insight
			}
		}
	}

	now := time.Now().UTC()
	result := make([]models.Insight, 0, len(fresh))

	for _, insight := range fresh {
		if kept, ok := existing[insight.InsightType]; ok {
			result = append(result, kept)
			continue
		}

		insight.ID = uuid.New().String()
		insight.UserID = userID
		insight.IsRead = false
		insight.CreatedAt = now
		insight.ExpiresAt = now.Add(InsightTTL)

		created, err := s.insightRepo.Create(ctx, &insight)
		if err != nil {
			// A concurrent computation may have inserted this type
			// first; its row wins and ours is discarded. Any other
			// failure still leaves the computed insight in the report.
			log.Warn("failed to persist insight",
				logger.Err(err),
				logger.String("insight_type", string(insight.InsightType)),
			)
			result = append(result, insight)
			continue
		}

		result = append(result, *created)
	}

	return result
}

// ListInsights returns non-expired insights ordered by priority, then
// recency
func (s *insightService) ListInsights(ctx context.Context, userID string, limit, offset int) ([]models.Insight, error) {
	insights, err := s.insightRepo.GetValidByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}

	// Repo rows come back newest first; a stable sort on priority rank
	// preserves recency within each band
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority.Rank() > insights[j].Priority.Rank()
	})

	if offset >= len(insights) {
		return []models.Insight{}, nil
	}
	insights = insights[offset:]
	if limit > 0 && limit < len(insights) {
		insights = insights[:limit]
	}

	return insights, nil
}

// MarkInsightRead marks an insight read. The caller must own it.
func (s *insightService) MarkInsightRead(ctx context.Context, userID, insightID string) error {
	insight, err := s.insightRepo.GetByID(ctx, insightID)
	if err != nil {
		return fmt.Errorf("failed to get insight: %w", err)
	}
	if insight == nil {
		return fmt.Errorf("%w: insight %s", ErrNotFound, insightID)
	}
	if insight.UserID != userID {
		return fmt.Errorf("%w: insight %s", ErrPermissionDenied, insightID)
	}

	if err := s.insightRepo.MarkRead(ctx, insightID); err != nil {
		return fmt.Errorf("failed to mark insight read: %w", err)
	}

	return nil
}
