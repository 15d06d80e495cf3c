package service

import (
	"fmt"
	"math"

	"github.com/hugmood/hugmood/backend/internal/models"
)

// ruleInputs carries everything a rule may inspect. All fields are
// read-only snapshots; rules are pure functions over them.
type ruleInputs struct {
	stats        models.MoodStatistics
	trend        models.Trend
	correlations []models.CorrelationResult
	streak       *models.StreakRecord
}

type insightRule func(in ruleInputs) *models.Insight

type recommendationRule func(in ruleInputs) *models.Recommendation

// insightRules is the fixed evaluation order. Every matching rule emits;
// there is no single-insight cap.
var insightRules = []insightRule{
	streakInsight,
	dominantMoodInsight,
	bestDayInsight,
	worstDayInsight,
	bestTimeInsight,
	variabilityInsight,
	trendInsight,
	positiveCorrelationInsight,
	negativeCorrelationInsight,
	sleepCorrelationInsight,
}

var recommendationRules = []recommendationRule{
	habitBuildingRecommendation,
	activitySuggestionRecommendation,
	routineRecommendation,
	selfCareRecommendation,
	doMoreRecommendation,
	doLessRecommendation,
	sleepHygieneRecommendation,
}

// generateInsights evaluates the rule list in order and returns every
// insight that fired
func generateInsights(in ruleInputs) []models.Insight {
	insights := make([]models.Insight, 0, len(insightRules))
	for _, rule := range insightRules {
		if insight := rule(in); insight != nil {
			insights = append(insights, *insight)
		}
	}
	return insights
}

// generateRecommendations evaluates the recommendation rules in order
func generateRecommendations(in ruleInputs) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(recommendationRules))
	for _, rule := range recommendationRules {
		if rec := rule(in); rec != nil {
			recs = append(recs, *rec)
		}
	}
	return recs
}

// =============================================================================
// Insight rules
// =============================================================================

func streakInsight(in ruleInputs) *models.Insight {
	if in.streak == nil || in.streak.CurrentStreak < 1 {
		return nil
	}

	description := fmt.Sprintf("You've logged your mood %d day(s) in a row", in.streak.CurrentStreak)
	if in.streak.CurrentStreak >= in.streak.LongestStreak {
		description += " - your best streak yet!"
	}

	return &models.Insight{
		InsightType: models.InsightTypeStreak,
		Title:       "Logging Streak",
		Description: description,
		Priority:    models.PriorityHigh,
		Data: map[string]interface{}{
			"current_streak": in.streak.CurrentStreak,
			"longest_streak": in.streak.LongestStreak,
		},
	}
}

func dominantMoodInsight(in ruleInputs) *models.Insight {
	if in.stats.DominantMood == nil {
		return nil
	}

	score := *in.stats.DominantMood
	return &models.Insight{
		InsightType: models.InsightTypeDominantMood,
		Title:       "Your Most Common Mood",
		Description: fmt.Sprintf("You rated your mood %d more often than any other score", score),
		Priority:    models.PriorityMedium,
		Data: map[string]interface{}{
			"score": score,
			"count": in.stats.MoodFrequency[score],
		},
	}
}

func bestDayInsight(in ruleInputs) *models.Insight {
	day, avg := maxBucket(in.stats.MoodByDayOfWeek, models.DayOfWeekLabels)
	if avg <= 0 {
		return nil
	}

	return &models.Insight{
		InsightType: models.InsightTypeBestDay,
		Title:       "Your Best Day",
		Description: fmt.Sprintf("Your mood tends to peak on %ss (average %.1f)", day, avg),
		Priority:    models.PriorityMedium,
		Data: map[string]interface{}{
			"day":           day,
			"average_score": avg,
		},
	}
}

func worstDayInsight(in ruleInputs) *models.Insight {
	day, avg := minBucket(in.stats.MoodByDayOfWeek, models.DayOfWeekLabels)
	if avg <= 0 {
		return nil
	}

	return &models.Insight{
		InsightType: models.InsightTypeWorstDay,
		Title:       "Your Toughest Day",
		Description: fmt.Sprintf("Your mood tends to dip on %ss (average %.1f)", day, avg),
		Priority:    models.PriorityMedium,
		Data: map[string]interface{}{
			"day":           day,
			"average_score": avg,
		},
	}
}

func bestTimeInsight(in ruleInputs) *models.Insight {
	slot, avg := maxBucket(in.stats.MoodByTimeOfDay, models.TimeOfDayLabels)
	if avg <= 0 {
		return nil
	}

	return &models.Insight{
		InsightType: models.InsightTypeBestTime,
		Title:       "Your Best Time of Day",
		Description: fmt.Sprintf("You usually feel best in the %s (average %.1f)", slot, avg),
		Priority:    models.PriorityMedium,
		Data: map[string]interface{}{
			"time_of_day":   slot,
			"average_score": avg,
		},
	}
}

func variabilityInsight(in ruleInputs) *models.Insight {
	return &models.Insight{
		InsightType: models.InsightTypeVariability,
		Title:       "Mood Stability",
		Description: fmt.Sprintf("Your mood variability over this period is %s", in.stats.MoodVariability),
		Priority:    models.PriorityLow,
		Data: map[string]interface{}{
			"variability": string(in.stats.MoodVariability),
		},
	}
}

func trendInsight(in ruleInputs) *models.Insight {
	priority := models.PriorityMedium
	if in.trend == models.TrendDeclining {
		priority = models.PriorityHigh
	}

	return &models.Insight{
		InsightType: models.InsightTypeTrend,
		Title:       "Recent Mood Trend",
		Description: fmt.Sprintf("Your mood has been %s recently", in.trend),
		Priority:    priority,
		Data: map[string]interface{}{
			"trend": string(in.trend),
		},
	}
}

func positiveCorrelationInsight(in ruleInputs) *models.Insight {
	best := strongestCorrelation(in.correlations, models.DirectionPositive)
	if best == nil {
		return nil
	}

	return &models.Insight{
		InsightType: models.InsightTypePositiveCorrelation,
		Title:       "What Lifts Your Mood",
		Description: fmt.Sprintf("Days with %s tend to come with better moods (r=%.2f)", best.Factor, best.Coefficient),
		Priority:    models.PriorityHigh,
		Data: map[string]interface{}{
			"factor":      best.Factor,
			"coefficient": best.Coefficient,
			"impact":      string(best.Impact),
			"sample_days": best.SampleDays,
		},
	}
}

func negativeCorrelationInsight(in ruleInputs) *models.Insight {
	best := strongestCorrelation(in.correlations, models.DirectionNegative)
	if best == nil {
		return nil
	}

	return &models.Insight{
		InsightType: models.InsightTypeNegativeCorrelation,
		Title:       "What Drags Your Mood",
		Description: fmt.Sprintf("Days with %s tend to come with lower moods (r=%.2f)", best.Factor, best.Coefficient),
		Priority:    models.PriorityHigh,
		Data: map[string]interface{}{
			"factor":      best.Factor,
			"coefficient": best.Coefficient,
			"impact":      string(best.Impact),
			"sample_days": best.SampleDays,
		},
	}
}

func sleepCorrelationInsight(in ruleInputs) *models.Insight {
	sleep := findFactor(in.correlations, factorSleep)
	if sleep == nil || sleep.Impact != models.ImpactStrong {
		return nil
	}

	return &models.Insight{
		InsightType: models.InsightTypeSleepCorrelation,
		Title:       "Sleep Shapes Your Mood",
		Description: fmt.Sprintf("Your sleep has a strong %s relationship with your mood (r=%.2f)", sleep.Direction, sleep.Coefficient),
		Priority:    models.PriorityHigh,
		Data: map[string]interface{}{
			"coefficient": sleep.Coefficient,
			"direction":   string(sleep.Direction),
			"sample_days": sleep.SampleDays,
		},
	}
}

// =============================================================================
// Recommendation rules
// =============================================================================

func habitBuildingRecommendation(in ruleInputs) *models.Recommendation {
	if in.streak != nil && in.streak.CurrentStreak >= 3 {
		return nil
	}

	return &models.Recommendation{
		RecommendationType: models.RecommendationHabitBuilding,
		Title:              "Build a Logging Habit",
		Description:        "Try logging your mood at the same time every day - right after breakfast works for many people",
		Priority:           models.PriorityMedium,
	}
}

func activitySuggestionRecommendation(in ruleInputs) *models.Recommendation {
	if in.stats.DominantMood == nil || *in.stats.DominantMood > 4 {
		return nil
	}

	return &models.Recommendation{
		RecommendationType: models.RecommendationActivitySuggestion,
		Title:              "Try Something Energizing",
		Description:        "Your most common mood has been on the low side. A short walk, a call with a friend, or time outdoors can help",
		Priority:           models.PriorityHigh,
	}
}

func routineRecommendation(in ruleInputs) *models.Recommendation {
	if in.stats.MoodVariability != models.VariabilityHigh {
		return nil
	}

	return &models.Recommendation{
		RecommendationType: models.RecommendationRoutine,
		Title:              "Steady Your Routine",
		Description:        "Your mood swings widely. Regular sleep, meals, and exercise times can smooth things out",
		Priority:           models.PriorityMedium,
	}
}

func selfCareRecommendation(in ruleInputs) *models.Recommendation {
	if in.trend != models.TrendDeclining {
		return nil
	}

	return &models.Recommendation{
		RecommendationType: models.RecommendationSelfCare,
		Title:              "Take Time for Yourself",
		Description:        "Your mood has been trending down. Consider scheduling something you enjoy this week",
		Priority:           models.PriorityHigh,
	}
}

func doMoreRecommendation(in ruleInputs) *models.Recommendation {
	best := strongestCorrelation(in.correlations, models.DirectionPositive)
	if best == nil {
		return nil
	}

	return &models.Recommendation{
		RecommendationType: models.RecommendationDoMore,
		Title:              fmt.Sprintf("Do More: %s", best.Factor),
		Description:        fmt.Sprintf("%s keeps showing up on your better days - make room for it", best.Factor),
		Priority:           models.PriorityMedium,
	}
}

func doLessRecommendation(in ruleInputs) *models.Recommendation {
	best := strongestCorrelation(in.correlations, models.DirectionNegative)
	if best == nil {
		return nil
	}

	return &models.Recommendation{
		RecommendationType: models.RecommendationDoLess,
		Title:              fmt.Sprintf("Cut Back: %s", best.Factor),
		Description:        fmt.Sprintf("%s keeps showing up on your harder days - try scaling it back", best.Factor),
		Priority:           models.PriorityMedium,
	}
}

func sleepHygieneRecommendation(in ruleInputs) *models.Recommendation {
	sleep := findFactor(in.correlations, factorSleep)
	if sleep == nil || sleep.Impact != models.ImpactStrong {
		return nil
	}

	return &models.Recommendation{
		RecommendationType: models.RecommendationSleepHygiene,
		Title:              "Protect Your Sleep",
		Description:        "Sleep has a strong effect on your mood. Aim for a consistent bedtime and wind down without screens",
		Priority:           models.PriorityHigh,
	}
}

// =============================================================================
// Helpers
// =============================================================================

// strongestCorrelation returns the non-weak correlation with the largest
// |r| in the given direction, or nil
func strongestCorrelation(results []models.CorrelationResult, direction models.Direction) *models.CorrelationResult {
	var best *models.CorrelationResult
	for i := range results {
		r := &results[i]
		if r.Direction != direction || r.Impact == models.ImpactWeak {
			continue
		}
		if best == nil || math.Abs(r.Coefficient) > math.Abs(best.Coefficient) {
			best = r
		}
	}
	return best
}

func findFactor(results []models.CorrelationResult, factor string) *models.CorrelationResult {
	for i := range results {
		if results[i].Factor == factor {
			return &results[i]
		}
	}
	return nil
}

// maxBucket scans labels in declared order so equal averages resolve to
// the earliest bucket deterministically
func maxBucket(buckets map[string]float64, labels []string) (string, float64) {
	bestLabel := ""
	best := math.Inf(-1)
	for _, label := range labels {
		if buckets[label] > best {
			best = buckets[label]
			bestLabel = label
		}
	}
	return bestLabel, best
}

func minBucket(buckets map[string]float64, labels []string) (string, float64) {
	bestLabel := ""
	best := math.Inf(1)
	for _, label := range labels {
		if buckets[label] < best {
			best = buckets[label]
			bestLabel = label
		}
	}
	return bestLabel, best
}
