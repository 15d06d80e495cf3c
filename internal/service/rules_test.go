package service

import (
	"testing"

	"github.com/hugmood/hugmood/backend/internal/models"
)

func intPtr(v int) *int { return &v }

func baseStats() models.MoodStatistics {
	stats := models.MoodStatistics{
		MoodFrequency:   map[int]int{},
		MoodByDayOfWeek: map[string]float64{},
		MoodByTimeOfDay: map[string]float64{},
		MoodVariability: models.VariabilityLow,
	}
	for _, day := range models.DayOfWeekLabels {
		stats.MoodByDayOfWeek[day] = 0
	}
	for _, slot := range models.TimeOfDayLabels {
		stats.MoodByTimeOfDay[slot] = 0
	}
	return stats
}

func findInsight(insights []models.Insight, insightType models.InsightType) *models.Insight {
	for i := range insights {
		if insights[i].InsightType == insightType {
			return &insights[i]
		}
	}
	return nil
}

func findRecommendation(recs []models.Recommendation, recType models.RecommendationType) *models.Recommendation {
	for i := range recs {
		if recs[i].RecommendationType == recType {
			return &recs[i]
		}
	}
	return nil
}

func TestStreakInsight(t *testing.T) {
	if got := streakInsight(ruleInputs{}); got != nil {
		t.Error("expected no streak insight without a streak record")
	}

	zero := &models.StreakRecord{CurrentStreak: 0, LongestStreak: 5}
	if got := streakInsight(ruleInputs{streak: zero}); got != nil {
		t.Error("expected no streak insight for a broken streak")
	}

	active := &models.StreakRecord{CurrentStreak: 4, LongestStreak: 10}
	insight := streakInsight(ruleInputs{streak: active})
	if insight == nil {
		t.Fatal("expected a streak insight")
	}
	if insight.Priority != models.PriorityHigh {
		t.Errorf("expected high priority, got %s", insight.Priority)
	}
	if insight.Data["current_streak"] != 4 {
		t.Errorf("expected current_streak 4 in data, got %v", insight.Data["current_streak"])
	}
}

func TestDominantMoodInsight(t *testing.T) {
	in := ruleInputs{stats: baseStats()}
	if got := dominantMoodInsight(in); got != nil {
		t.Error("expected no insight without a dominant mood")
	}

	in.stats.DominantMood = intPtr(7)
	in.stats.MoodFrequency[7] = 12
	insight := dominantMoodInsight(in)
	if insight == nil {
		t.Fatal("expected a dominant mood insight")
	}
	if insight.Data["count"] != 12 {
		t.Errorf("expected count 12 in data, got %v", insight.Data["count"])
	}
}

func TestBestAndWorstDayInsights(t *testing.T) {
	in := ruleInputs{stats: baseStats()}
	if got := bestDayInsight(in); got != nil {
		t.Error("expected no best-day insight with empty buckets")
	}
	if got := worstDayInsight(in); got != nil {
		t.Error("expected no worst-day insight with empty buckets")
	}

	stats := baseStats()
	for _, day := range models.DayOfWeekLabels {
		stats.MoodByDayOfWeek[day] = 5
	}
	stats.MoodByDayOfWeek["Saturday"] = 8.5
	stats.MoodByDayOfWeek["Monday"] = 3.2
	in = ruleInputs{stats: stats}

	best := bestDayInsight(in)
	if best == nil || best.Data["day"] != "Saturday" {
		t.Errorf("expected best day Saturday, got %v", best)
	}
	worst := worstDayInsight(in)
	if worst == nil || worst.Data["day"] != "Monday" {
		t.Errorf("expected worst day Monday, got %v", worst)
	}
}

func TestBestTimeInsight(t *testing.T) {
	stats := baseStats()
	stats.MoodByTimeOfDay[models.TimeOfDayMorning] = 6
	stats.MoodByTimeOfDay[models.TimeOfDayEvening] = 7.5

	insight := bestTimeInsight(ruleInputs{stats: stats})
	if insight == nil {
		t.Fatal("expected a best-time insight")
	}
	if insight.Data["time_of_day"] != models.TimeOfDayEvening {
		t.Errorf("expected evening, got %v", insight.Data["time_of_day"])
	}
}

func TestTrendInsight_DecliningIsHighPriority(t *testing.T) {
	stable := trendInsight(ruleInputs{trend: models.TrendStable})
	if stable == nil || stable.Priority != models.PriorityMedium {
		t.Errorf("expected medium priority for stable trend, got %v", stable)
	}

	declining := trendInsight(ruleInputs{trend: models.TrendDeclining})
	if declining == nil || declining.Priority != models.PriorityHigh {
		t.Errorf("expected high priority for declining trend, got %v", declining)
	}
}

func TestCorrelationInsights_PickStrongestNonWeak(t *testing.T) {
	correlations := []models.CorrelationResult{
		{Factor: "coffee", Coefficient: 0.1, Impact: models.ImpactWeak, Direction: models.DirectionPositive},
		{Factor: "exercise", Coefficient: 0.45, Impact: models.ImpactModerate, Direction: models.DirectionPositive},
		{Factor: "meditation", Coefficient: 0.7, Impact: models.ImpactStrong, Direction: models.DirectionPositive},
		{Factor: "overtime", Coefficient: -0.5, Impact: models.ImpactModerate, Direction: models.DirectionNegative},
	}
	in := ruleInputs{correlations: correlations}

	positive := positiveCorrelationInsight(in)
	if positive == nil || positive.Data["factor"] != "meditation" {
		t.Errorf("expected strongest positive factor meditation, got %v", positive)
	}

	negative := negativeCorrelationInsight(in)
	if negative == nil || negative.Data["factor"] != "overtime" {
		t.Errorf("expected negative factor overtime, got %v", negative)
	}
}

func TestCorrelationInsights_WeakOnlyProducesNothing(t *testing.T) {
	in := ruleInputs{correlations: []models.CorrelationResult{
		{Factor: "coffee", Coefficient: 0.2, Impact: models.ImpactWeak, Direction: models.DirectionPositive},
		{Factor: "news", Coefficient: -0.1, Impact: models.ImpactWeak, Direction: models.DirectionNegative},
	}}

	if got := positiveCorrelationInsight(in); got != nil {
		t.Error("expected no positive correlation insight from weak factors")
	}
	if got := negativeCorrelationInsight(in); got != nil {
		t.Error("expected no negative correlation insight from weak factors")
	}
}

func TestSleepCorrelationInsight_RequiresStrongSleepFactor(t *testing.T) {
	moderate := ruleInputs{correlations: []models.CorrelationResult{
		{Factor: "sleep", Coefficient: 0.4, Impact: models.ImpactModerate, Direction: models.DirectionPositive},
	}}
	if got := sleepCorrelationInsight(moderate); got != nil {
		t.Error("expected no sleep insight for moderate correlation")
	}

	strong := ruleInputs{correlations: []models.CorrelationResult{
		{Factor: "sleep", Coefficient: 0.75, Impact: models.ImpactStrong, Direction: models.DirectionPositive},
	}}
	insight := sleepCorrelationInsight(strong)
	if insight == nil {
		t.Fatal("expected a sleep insight for strong correlation")
	}
	if insight.Priority != models.PriorityHigh {
		t.Errorf("expected high priority, got %s", insight.Priority)
	}
}

func TestHabitBuildingRecommendation(t *testing.T) {
	if got := habitBuildingRecommendation(ruleInputs{}); got == nil {
		t.Error("expected habit recommendation without a streak record")
	}

	short := ruleInputs{streak: &models.StreakRecord{CurrentStreak: 2}}
	if got := habitBuildingRecommendation(short); got == nil {
		t.Error("expected habit recommendation for a short streak")
	}

	established := ruleInputs{streak: &models.StreakRecord{CurrentStreak: 3}}
	if got := habitBuildingRecommendation(established); got != nil {
		t.Error("expected no habit recommendation once the habit is established")
	}
}

func TestActivitySuggestionRecommendation(t *testing.T) {
	in := ruleInputs{stats: baseStats()}
	if got := activitySuggestionRecommendation(in); got != nil {
		t.Error("expected no suggestion without a dominant mood")
	}

	in.stats.DominantMood = intPtr(4)
	rec := activitySuggestionRecommendation(in)
	if rec == nil {
		t.Fatal("expected a suggestion for a low dominant mood")
	}
	if rec.Priority != models.PriorityHigh {
		t.Errorf("expected high priority, got %s", rec.Priority)
	}

	in.stats.DominantMood = intPtr(5)
	if got := activitySuggestionRecommendation(in); got != nil {
		t.Error("expected no suggestion for dominant mood above 4")
	}
}

func TestRoutineAndSelfCareRecommendations(t *testing.T) {
	stats := baseStats()
	stats.MoodVariability = models.VariabilityHigh
	if got := routineRecommendation(ruleInputs{stats: stats}); got == nil {
		t.Error("expected routine recommendation for high variability")
	}

	stats.MoodVariability = models.VariabilityModerate
	if got := routineRecommendation(ruleInputs{stats: stats}); got != nil {
		t.Error("expected no routine recommendation below high variability")
	}

	if got := selfCareRecommendation(ruleInputs{trend: models.TrendDeclining}); got == nil {
		t.Error("expected self-care recommendation for declining trend")
	}
	if got := selfCareRecommendation(ruleInputs{trend: models.TrendStable}); got != nil {
		t.Error("expected no self-care recommendation for stable trend")
	}
}

func TestGenerateInsights_RichInputFiresEveryRule(t *testing.T) {
	stats := baseStats()
	stats.DominantMood = intPtr(3)
	stats.MoodFrequency[3] = 9
	stats.MoodVariability = models.VariabilityHigh
	for _, day := range models.DayOfWeekLabels {
		stats.MoodByDayOfWeek[day] = 5
	}
	stats.MoodByDayOfWeek["Friday"] = 8
	stats.MoodByDayOfWeek["Tuesday"] = 2
	stats.MoodByTimeOfDay[models.TimeOfDayMorning] = 7

	in := ruleInputs{
		stats: stats,
		trend: models.TrendDeclining,
		correlations: []models.CorrelationResult{
			{Factor: "exercise", Coefficient: 0.65, Impact: models.ImpactStrong, Direction: models.DirectionPositive},
			{Factor: "overtime", Coefficient: -0.7, Impact: models.ImpactStrong, Direction: models.DirectionNegative},
			{Factor: "sleep", Coefficient: 0.8, Impact: models.ImpactStrong, Direction: models.DirectionPositive},
		},
		streak: &models.StreakRecord{CurrentStreak: 2, LongestStreak: 6},
	}

	insights := generateInsights(in)
	if len(insights) != len(insightRules) {
		t.Fatalf("expected all %d insight rules to fire, got %d", len(insightRules), len(insights))
	}
	for _, insightType := range []models.InsightType{
		models.InsightTypeStreak,
		models.InsightTypeDominantMood,
		models.InsightTypeBestDay,
		models.InsightTypeWorstDay,
		models.InsightTypeBestTime,
		models.InsightTypeVariability,
		models.InsightTypeTrend,
		models.InsightTypePositiveCorrelation,
		models.InsightTypeNegativeCorrelation,
		models.InsightTypeSleepCorrelation,
	} {
		if findInsight(insights, insightType) == nil {
			t.Errorf("expected insight of type %s", insightType)
		}
	}

	recs := generateRecommendations(in)
	if len(recs) != len(recommendationRules) {
		t.Fatalf("expected all %d recommendation rules to fire, got %d", len(recommendationRules), len(recs))
	}
	if findRecommendation(recs, models.RecommendationSleepHygiene) == nil {
		t.Error("expected a sleep hygiene recommendation")
	}
}
