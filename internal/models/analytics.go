package models

import "time"

// Priority represents the priority of an insight or recommendation
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns a sortable weight for a priority (higher is more important)
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Impact classifies the strength of a correlation
type Impact string

const (
	ImpactWeak     Impact = "weak"
	ImpactModerate Impact = "moderate"
	ImpactStrong   Impact = "strong"
)

// Direction represents the sign of a correlation
type Direction string

const (
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
)

// Trend classifies recent mood direction
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Variability classifies mood score dispersion over the analysis window
type Variability string

const (
	VariabilityLow      Variability = "low"
	VariabilityModerate Variability = "moderate"
	VariabilityHigh     Variability = "high"
)

// InsightType identifies which rule produced an insight. At most one
// non-expired insight per type exists for a user at any time.
type InsightType string

const (
	InsightTypeStreak              InsightType = "streak"
	InsightTypeDominantMood        InsightType = "dominant_mood"
	InsightTypeBestDay             InsightType = "best_day"
	InsightTypeWorstDay            InsightType = "worst_day"
	InsightTypeBestTime            InsightType = "best_time"
	InsightTypeVariability         InsightType = "variability"
	InsightTypeTrend               InsightType = "trend"
	InsightTypePositiveCorrelation InsightType = "positive_correlation"
	InsightTypeNegativeCorrelation InsightType = "negative_correlation"
	InsightTypeSleepCorrelation    InsightType = "sleep_correlation"
)

// RecommendationType identifies which rule produced a recommendation
type RecommendationType string

const (
	RecommendationHabitBuilding      RecommendationType = "habit_building"
	RecommendationActivitySuggestion RecommendationType = "activity_suggestion"
	RecommendationRoutine            RecommendationType = "routine"
	RecommendationSelfCare           RecommendationType = "self_care"
	RecommendationDoMore             RecommendationType = "do_more"
	RecommendationDoLess             RecommendationType = "do_less"
	RecommendationSleepHygiene       RecommendationType = "sleep_hygiene"
)

// Day-of-week bucket labels, Sunday first to match time.Weekday
var DayOfWeekLabels = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Time-of-day bucket labels
const (
	TimeOfDayMorning   = "morning"   // [5, 12)
	TimeOfDayAfternoon = "afternoon" // [12, 17)
	TimeOfDayEvening   = "evening"   // [17, 21)
	TimeOfDayNight     = "night"     // otherwise
)

// TimeOfDayLabels lists the time-of-day buckets in chronological order
var TimeOfDayLabels = []string{TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening, TimeOfDayNight}

// MoodStatistics holds descriptive statistics for a window of mood entries
type MoodStatistics struct {
	TotalEntries     int                `json:"total_entries"`
	UniqueMoodValues int                `json:"unique_mood_values"`
	AverageScore     float64            `json:"average_score"`
	MoodFrequency    map[int]int        `json:"mood_frequency"`
	MoodByDayOfWeek  map[string]float64 `json:"mood_by_day_of_week"`
	MoodByTimeOfDay  map[string]float64 `json:"mood_by_time_of_day"`
	DominantMood     *int               `json:"dominant_mood,omitempty"`
	MoodVariability  Variability        `json:"mood_variability"`
}

// CorrelationResult holds the correlation between daily mood and one factor
type CorrelationResult struct {
	Factor      string    `json:"factor"`
	Coefficient float64   `json:"coefficient"` // Pearson r, in [-1, 1]
	Impact      Impact    `json:"impact"`
	Direction   Direction `json:"direction"`
	SampleDays  int       `json:"sample_days"`
}

// Insight represents a persisted, deduplicated, expiring observation
// about a user's mood history
type Insight struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id"`
	InsightType InsightType            `json:"insight_type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
	Priority    Priority               `json:"priority"`
	IsRead      bool                   `json:"is_read"`
	CreatedAt   time.Time              `json:"created_at"`
	ExpiresAt   time.Time              `json:"expires_at"`
}

// Recommendation is an ephemeral suggestion, recomputed on every request
type Recommendation struct {
	RecommendationType RecommendationType `json:"recommendation_type"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Priority           Priority           `json:"priority"`
}

// AnalyticsReport is the composed per-request analytics response.
// It is never persisted as a whole.
type AnalyticsReport struct {
	Statistics      MoodStatistics      `json:"statistics"`
	Trend           Trend               `json:"trend"`
	Correlations    []CorrelationResult `json:"correlations,omitempty"`
	Insights        []Insight           `json:"insights"`
	Recommendations []Recommendation    `json:"recommendations"`
	TimeRangeDays   int                 `json:"time_range_days"`
	GeneratedAt     time.Time           `json:"generated_at"`
}
