package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hugmood/hugmood/backend/internal/models"
	"github.com/hugmood/hugmood/backend/pkg/supabase"
)

type streakRepository struct {
	client *supabase.Client
}

// NewStreakRepository creates a new streak repository
func NewStreakRepository(client *supabase.Client) StreakRepository {
	return &streakRepository{client: client}
}

func (r *streakRepository) GetByUserID(ctx context.Context, userID string) (*models.StreakRecord, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
	}

	body, err := r.client.Query("streak_records", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get streak record: %w", err)
	}

	var records []models.StreakRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	return &records[0], nil
}

func (r *streakRepository) Upsert(ctx context.Context, record *models.StreakRecord) (*models.StreakRecord, error) {
	data := map[string]interface{}{
		"user_id":        record.UserID,
		"current_streak": record.CurrentStreak,
		"longest_streak": record.LongestStreak,
		"updated_at":     record.UpdatedAt,
	}

	if record.LastRecordedDate != nil {
		data["last_recorded_date"] = record.LastRecordedDate.Format("2006-01-02")
	}

	body, err := r.client.Upsert("streak_records", data, "user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert streak record: %w", err)
	}

	var records []models.StreakRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no streak record returned")
	}

	return &records[0], nil
}
