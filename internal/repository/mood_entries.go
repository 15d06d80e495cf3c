package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hugmood/hugmood/backend/internal/models"
	"github.com/hugmood/hugmood/backend/pkg/supabase"
)

type moodEntryRepository struct {
	client *supabase.Client
}

// NewMoodEntryRepository creates a new mood entry repository
func NewMoodEntryRepository(client *supabase.Client) MoodEntryRepository {
	return &moodEntryRepository{client: client}
}

func (r *moodEntryRepository) Create(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	data := map[string]interface{}{
		"id":         entry.ID,
		"user_id":    entry.UserID,
		"score":      entry.Score,
		"is_public":  entry.IsPublic,
		"created_at": entry.CreatedAt,
	}

	if entry.Note != nil {
		data["note"] = *entry.Note
	}
	if len(entry.Activities) > 0 {
		data["activities"] = entry.Activities
	}

	body, err := r.client.Insert("mood_entries", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no mood entry returned")
	}

	return &entries[0], nil
}

func (r *moodEntryRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete("mood_entries", id); err != nil {
		return fmt.Errorf("failed to delete mood entry: %w", err)
	}
	return nil
}

func (r *moodEntryRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.MoodEntry, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"and":     fmt.Sprintf("(created_at.gte.%s,created_at.lte.%s)", startDate.Format(time.RFC3339), endDate.Format(time.RFC3339)),
		"select":  "*",
		"order":   "created_at.desc",
	}

	body, err := r.client.Query("mood_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}

func (r *moodEntryRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.MoodEntry, error) {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"select":  "*",
		"order":   "created_at.desc",
	}
	if limit > 0 {
		query["limit"] = limit
	}
	if offset > 0 {
		query["offset"] = offset
	}

	body, err := r.client.Query("mood_entries", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood entries: %w", err)
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return entries, nil
}
