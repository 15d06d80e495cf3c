package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hugmood/hugmood/backend/internal/models"
	"github.com/hugmood/hugmood/backend/pkg/supabase"
)

type activityLogRepository struct {
	client *supabase.Client
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(client *supabase.Client) ActivityLogRepository {
	return &activityLogRepository{client: client}
}

func (r *activityLogRepository) Create(ctx context.Context, log *models.ActivityLog) (*models.ActivityLog, error) {
	data := map[string]interface{}{
		"id":            log.ID,
		"user_id":       log.UserID,
		"activity_type": log.ActivityType,
		"created_at":    log.CreatedAt,
	}

	if log.DurationMinutes != nil {
		data["duration_minutes"] = *log.DurationMinutes
	}
	if len(log.Metadata) > 0 {
		data["metadata"] = log.Metadata
	}

	body, err := r.client.Insert("activity_logs", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity log: %w", err)
	}

	var logs []models.ActivityLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(logs) == 0 {
		return nil, fmt.Errorf("no activity log returned")
	}

	return &logs[0], nil
}

func (r *activityLogRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.ActivityLog, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"and":     fmt.Sprintf("(created_at.gte.%s,created_at.lte.%s)", startDate.Format(time.RFC3339), endDate.Format(time.RFC3339)),
		"select":  "*",
		"order":   "created_at.desc",
	}

	body, err := r.client.Query("activity_logs", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity logs: %w", err)
	}

	var logs []models.ActivityLog
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return logs, nil
}
