package models

import "time"

// MoodEntry represents a single mood check-in
type MoodEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Score      int       `json:"score"` // 1-10; 0 means the entry carries no score
	Note       *string   `json:"note,omitempty"`
	IsPublic   bool      `json:"is_public"`
	Activities []string  `json:"activities,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActivityLog represents a logged activity, independent of mood entries.
// Sleep and screen time are recorded as activity types with a duration.
type ActivityLog struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	ActivityType    string                 `json:"activity_type"`
	DurationMinutes *float64               `json:"duration_minutes,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// StreakRecord tracks consecutive-day mood logging for a user.
// Invariant: LongestStreak >= CurrentStreak.
type StreakRecord struct {
	UserID           string     `json:"user_id"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastRecordedDate *time.Time `json:"last_recorded_date,omitempty"` // calendar date, UTC midnight
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CreateMoodEntryRequest is the request body for submitting a mood entry
type CreateMoodEntryRequest struct {
	Score      int      `json:"score" binding:"required,min=1,max=10"`
	Note       *string  `json:"note"`
	IsPublic   bool     `json:"is_public"`
	Activities []string `json:"activities"`
}

// RecordActivityRequest is the request body for logging an activity
type RecordActivityRequest struct {
	ActivityType    string                 `json:"activity_type" binding:"required"`
	DurationMinutes *float64               `json:"duration_minutes"`
	Metadata        map[string]interface{} `json:"metadata"`
}
