package service

import (
	"math"
	"testing"
	"time"

	"github.com/hugmood/hugmood/backend/internal/models"
)

// entriesWithScores builds scored entries newest first, one per day
func entriesWithScores(scores ...int) []models.MoodEntry {
	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	entries := make([]models.MoodEntry, len(scores))
	for i, score := range scores {
		entries[i] = models.MoodEntry{
			Score:     score,
			CreatedAt: base.AddDate(0, 0, -i),
		}
	}
	return entries
}

func TestCalculateStatistics_EmptyWindow(t *testing.T) {
	stats := calculateStatistics(nil)

	if stats.TotalEntries != 0 {
		t.Errorf("expected 0 total entries, got %d", stats.TotalEntries)
	}
	if stats.DominantMood != nil {
		t.Error("expected no dominant mood for empty window")
	}
	if stats.MoodVariability != models.VariabilityLow {
		t.Errorf("expected low variability for empty window, got %s", stats.MoodVariability)
	}
	// Every bucket must be present and zero, not missing
	for _, day := range models.DayOfWeekLabels {
		if v, ok := stats.MoodByDayOfWeek[day]; !ok || v != 0 {
			t.Errorf("expected zero bucket for %s, got %v (present=%v)", day, v, ok)
		}
	}
	for _, slot := range models.TimeOfDayLabels {
		if v, ok := stats.MoodByTimeOfDay[slot]; !ok || v != 0 {
			t.Errorf("expected zero bucket for %s, got %v (present=%v)", slot, v, ok)
		}
	}
}

func TestCalculateStatistics_UnscoredEntriesExcludedFromAverage(t *testing.T) {
	entries := entriesWithScores(8, 0, 6)

	stats := calculateStatistics(entries)

	if stats.TotalEntries != 3 {
		t.Errorf("expected 3 total entries, got %d", stats.TotalEntries)
	}
	if stats.AverageScore != 7 {
		t.Errorf("expected average 7 over scored entries only, got %f", stats.AverageScore)
	}
	if stats.UniqueMoodValues != 2 {
		t.Errorf("expected 2 unique mood values, got %d", stats.UniqueMoodValues)
	}
}

func TestCalculateStatistics_IdenticalScoresAreLowVariability(t *testing.T) {
	stats := calculateStatistics(entriesWithScores(5, 5, 5, 5))

	if stats.MoodVariability != models.VariabilityLow {
		t.Errorf("expected low variability, got %s", stats.MoodVariability)
	}
	if stats.AverageScore != 5 {
		t.Errorf("expected average 5, got %f", stats.AverageScore)
	}
	if stats.DominantMood == nil || *stats.DominantMood != 5 {
		t.Errorf("expected dominant mood 5, got %v", stats.DominantMood)
	}
}

func TestClassifyVariability_Bands(t *testing.T) {
	tests := []struct {
		stddev float64
		want   models.Variability
	}{
		{0, models.VariabilityLow},
		{1.49, models.VariabilityLow},
		{1.5, models.VariabilityModerate},
		{3.0, models.VariabilityModerate},
		{3.01, models.VariabilityHigh},
	}

	for _, tt := range tests {
		if got := classifyVariability(tt.stddev); got != tt.want {
			t.Errorf("classifyVariability(%v): expected %s, got %s", tt.stddev, tt.want, got)
		}
	}
}

func TestCalculateStatistics_DominantMoodTieBreaksToMostRecent(t *testing.T) {
	// 7 and 3 both appear twice; 7 is newer (entries are newest first)
	stats := calculateStatistics(entriesWithScores(7, 3, 7, 3))

	if stats.DominantMood == nil || *stats.DominantMood != 7 {
		t.Errorf("expected dominant mood 7 on tie, got %v", stats.DominantMood)
	}
}

func TestCalculateStatistics_DayOfWeekAverages(t *testing.T) {
	// Buckets are local-calendar; build the fixtures in the local zone so
	// the expected labels hold in any test environment.
	// 2026-03-15 is a Sunday.
	sunday := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	monday := sunday.AddDate(0, 0, 1)

	entries := []models.MoodEntry{
		{Score: 8, CreatedAt: monday},
		{Score: 6, CreatedAt: monday},
		{Score: 3, CreatedAt: sunday},
	}

	stats := calculateStatistics(entries)

	if got := stats.MoodByDayOfWeek["Monday"]; got != 7 {
		t.Errorf("expected Monday average 7, got %v", got)
	}
	if got := stats.MoodByDayOfWeek["Sunday"]; got != 3 {
		t.Errorf("expected Sunday average 3, got %v", got)
	}
	if got := stats.MoodByDayOfWeek["Friday"]; got != 0 {
		t.Errorf("expected empty Friday bucket to be 0, got %v", got)
	}
}

func TestCalculateStatistics_DayAndTimeBucketsShareOneZone(t *testing.T) {
	// A late-night entry must land in the same calendar day for both the
	// day-of-week and time-of-day buckets. 2026-03-16 is a Monday.
	lateMonday := time.Date(2026, 3, 16, 23, 30, 0, 0, time.Local)

	stats := calculateStatistics([]models.MoodEntry{{Score: 6, CreatedAt: lateMonday}})

	if got := stats.MoodByDayOfWeek["Monday"]; got != 6 {
		t.Errorf("expected Monday bucket 6, got %v", got)
	}
	if got := stats.MoodByDayOfWeek["Tuesday"]; got != 0 {
		t.Errorf("expected empty Tuesday bucket, got %v", got)
	}
	if got := stats.MoodByTimeOfDay[models.TimeOfDayNight]; got != 6 {
		t.Errorf("expected night bucket 6, got %v", got)
	}
}

func TestTimeOfDayBucket_Boundaries(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, models.TimeOfDayNight},
		{4, models.TimeOfDayNight},
		{5, models.TimeOfDayMorning},
		{11, models.TimeOfDayMorning},
		{12, models.TimeOfDayAfternoon},
		{16, models.TimeOfDayAfternoon},
		{17, models.TimeOfDayEvening},
		{20, models.TimeOfDayEvening},
		{21, models.TimeOfDayNight},
		{23, models.TimeOfDayNight},
	}

	for _, tt := range tests {
		if got := timeOfDayBucket(tt.hour); got != tt.want {
			t.Errorf("timeOfDayBucket(%d): expected %s, got %s", tt.hour, tt.want, got)
		}
	}
}

func TestClassifyTrend_InsufficientDataIsStable(t *testing.T) {
	// 13 scored entries is one short of two full windows
	scores := make([]int, 13)
	for i := range scores {
		scores[i] = 10
	}

	if got := classifyTrend(entriesWithScores(scores...)); got != models.TrendStable {
		t.Errorf("expected stable with 13 entries, got %s", got)
	}
}

func TestClassifyTrend_Improving(t *testing.T) {
	// Newest first: recent window of 8s against an older window of 4s
	scores := []int{8, 8, 8, 8, 8, 8, 8, 4, 4, 4, 4, 4, 4, 4}

	if got := classifyTrend(entriesWithScores(scores...)); got != models.TrendImproving {
		t.Errorf("expected improving, got %s", got)
	}
}

func TestClassifyTrend_Declining(t *testing.T) {
	scores := []int{3, 3, 3, 3, 3, 3, 3, 7, 7, 7, 7, 7, 7, 7}

	if got := classifyTrend(entriesWithScores(scores...)); got != models.TrendDeclining {
		t.Errorf("expected declining, got %s", got)
	}
}

func TestClassifyTrend_DifferenceOfExactlyOneIsStable(t *testing.T) {
	// recent mean 6, older mean 5; the move must exceed the threshold
	scores := []int{6, 6, 6, 6, 6, 6, 6, 5, 5, 5, 5, 5, 5, 5}

	if got := classifyTrend(entriesWithScores(scores...)); got != models.TrendStable {
		t.Errorf("expected stable when difference equals threshold, got %s", got)
	}
}

func TestClassifyTrend_SkipsUnscoredEntries(t *testing.T) {
	// Unscored entries interleaved must not count toward the windows
	scores := []int{8, 0, 8, 8, 8, 8, 8, 8, 0, 4, 4, 4, 4, 4, 4, 4}

	if got := classifyTrend(entriesWithScores(scores...)); got != models.TrendImproving {
		t.Errorf("expected improving ignoring unscored entries, got %s", got)
	}
}

func TestMean(t *testing.T) {
	if got := mean(nil); got != 0 {
		t.Errorf("expected 0 for empty slice, got %v", got)
	}
	if got := mean([]float64{2, 4, 6}); math.Abs(got-4) > 1e-9 {
		t.Errorf("expected 4, got %v", got)
	}
}
