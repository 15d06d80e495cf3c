package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hugmood/hugmood/backend/internal/models"
	"github.com/hugmood/hugmood/backend/pkg/supabase"
)

type insightRepository struct {
	client *supabase.Client
}

// NewInsightRepository creates a new insight repository
func NewInsightRepository(client *supabase.Client) InsightRepository {
	return &insightRepository{client: client}
}

func (r *insightRepository) Create(ctx context.Context, insight *models.Insight) (*models.Insight, error) {
	data := map[string]interface{}{
		"id":           insight.ID,
		"user_id":      insight.UserID,
		"insight_type": insight.InsightType,
		"title":        insight.Title,
		"description":  insight.Description,
		"priority":     insight.Priority,
		"is_read":      insight.IsRead,
		"created_at":   insight.CreatedAt,
		"expires_at":   insight.ExpiresAt,
	}

	if len(insight.Data) > 0 {
		data["data"] = insight.Data
	}

	// The insights table carries a unique constraint on (user_id,
	// insight_type) for non-expired rows; a concurrent writer loses to
	// the existing row rather than duplicating it.
	body, err := r.client.Insert("insights", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create insight: %w", err)
	}

	var insights []models.Insight
	if err := json.Unmarshal(body, &insights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(insights) == 0 {
		return nil, fmt.Errorf("no insight returned")
	}

	return &insights[0], nil
}

func (r *insightRepository) GetValidByUserID(ctx context.Context, userID string) ([]models.Insight, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	query := map[string]interface{}{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"expires_at": fmt.Sprintf("gt.%s", now),
		"select":     "*",
		"order":      "created_at.desc",
	}

	body, err := r.client.Query("insights", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get valid insights: %w", err)
	}

	var insights []models.Insight
	if err := json.Unmarshal(body, &insights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return insights, nil
}

func (r *insightRepository) GetByID(ctx context.Context, id string) (*models.Insight, error) {
	query := map[string]interface{}{
		"id":     fmt.Sprintf("eq.%s", id),
		"select": "*",
	}

	body, err := r.client.Query("insights", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}

	var insights []models.Insight
	if err := json.Unmarshal(body, &insights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(insights) == 0 {
		return nil, nil
	}

	return &insights[0], nil
}

func (r *insightRepository) MarkRead(ctx context.Context, id string) error {
	query := map[string]interface{}{
		"id": fmt.Sprintf("eq.%s", id),
	}

	data := map[string]interface{}{
		"is_read": true,
	}

	if _, err := r.client.UpdateWhere("insights", query, data); err != nil {
		return fmt.Errorf("failed to mark insight read: %w", err)
	}

	return nil
}

func (r *insightRepository) DeleteExpired(ctx context.Context, userID string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := map[string]interface{}{
		"user_id":    fmt.Sprintf("eq.%s", userID),
		"expires_at": fmt.Sprintf("lt.%s", now),
	}

	if err := r.client.DeleteWhere("insights", query); err != nil {
		return fmt.Errorf("failed to delete expired insights: %w", err)
	}

	return nil
}
