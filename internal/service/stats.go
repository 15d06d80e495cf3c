package service

import (
	"math"

	"github.com/hugmood/hugmood/backend/internal/models"
)

const (
	// Trend comparison window size; two full windows are required
	trendWindowSize = 7

	// Mean-difference needed before a trend counts as a move
	trendThreshold = 1.0

	// Population stddev thresholds for variability classification
	variabilityLowMax      = 1.5
	variabilityModerateMax = 3.0
)

// calculateStatistics aggregates a window of mood entries, newest first.
// Entries without a score count toward TotalEntries but are excluded
// from every score-derived figure.
func calculateStatistics(entries []models.MoodEntry) models.MoodStatistics {
	stats := models.MoodStatistics{
		TotalEntries:    len(entries),
		MoodFrequency:   make(map[int]int),
		MoodByDayOfWeek: make(map[string]float64, len(models.DayOfWeekLabels)),
		MoodByTimeOfDay: make(map[string]float64, len(models.TimeOfDayLabels)),
		MoodVariability: models.VariabilityLow,
	}

	// Buckets with zero samples report 0, not null
	for _, day := range models.DayOfWeekLabels {
		stats.MoodByDayOfWeek[day] = 0
	}
	for _, slot := range models.TimeOfDayLabels {
		stats.MoodByTimeOfDay[slot] = 0
	}

	scores := make([]float64, 0, len(entries))
	daySums := make(map[string]float64)
	dayCounts := make(map[string]int)
	slotSums := make(map[string]float64)
	slotCounts := make(map[string]int)

	// Entries are newest first, so the first time we see a score is also
	// its most recent occurrence; remember the order for tie-breaking.
	recency := make(map[int]int)

	for i, entry := range entries {
		if entry.Score == 0 {
			continue
		}

		scores = append(scores, float64(entry.Score))
		stats.MoodFrequency[entry.Score]++
		if _, seen := recency[entry.Score]; !seen {
			recency[entry.Score] = i
		}

		// Same zone as the time-of-day buckets, so a late-night entry
		// lands in one calendar day for both
		day := models.DayOfWeekLabels[int(entry.CreatedAt.Local().Weekday())]
		daySums[day] += float64(entry.Score)
		dayCounts[day]++

		slot := timeOfDayBucket(entry.CreatedAt.Local().Hour())
		slotSums[slot] += float64(entry.Score)
		slotCounts[slot]++
	}

	stats.UniqueMoodValues = len(stats.MoodFrequency)

	if len(scores) == 0 {
		return stats
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))
	stats.AverageScore = mean

	for day, total := range daySums {
		stats.MoodByDayOfWeek[day] = total / float64(dayCounts[day])
	}
	for slot, total := range slotSums {
		stats.MoodByTimeOfDay[slot] = total / float64(slotCounts[slot])
	}

	dominant := dominantMood(stats.MoodFrequency, recency)
	stats.DominantMood = &dominant

	var sumSq float64
	for _, s := range scores {
		d := s - mean
		sumSq += d * d
	}
	stddev := math.Sqrt(sumSq / float64(len(scores)))
	stats.MoodVariability = classifyVariability(stddev)

	return stats
}

// dominantMood returns the mode of the frequency map; ties break toward
// the most recently seen score (lowest recency index).
func dominantMood(frequency map[int]int, recency map[int]int) int {
	best := 0
	bestCount := -1
	for score, count := range frequency {
		if count > bestCount || (count == bestCount && recency[score] < recency[best]) {
			best = score
			bestCount = count
		}
	}
	return best
}

// classifyVariability maps a population stddev onto the documented bands
func classifyVariability(stddev float64) models.Variability {
	switch {
	case stddev < variabilityLowMax:
		return models.VariabilityLow
	case stddev <= variabilityModerateMax:
		return models.VariabilityModerate
	default:
		return models.VariabilityHigh
	}
}

// timeOfDayBucket maps a local hour onto a bucket label
func timeOfDayBucket(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return models.TimeOfDayMorning
	case hour >= 12 && hour < 17:
		return models.TimeOfDayAfternoon
	case hour >= 17 && hour < 21:
		return models.TimeOfDayEvening
	default:
		return models.TimeOfDayNight
	}
}

// classifyTrend compares two non-overlapping windows of recent scores.
// Entries are newest first. Fewer than two full windows of scored
// entries is insufficient data and reads as stable.
func classifyTrend(entries []models.MoodEntry) models.Trend {
	scores := make([]float64, 0, 2*trendWindowSize)
	for _, entry := range entries {
		if entry.Score == 0 {
			continue
		}
		scores = append(scores, float64(entry.Score))
		if len(scores) == 2*trendWindowSize {
			break
		}
	}

	if len(scores) < 2*trendWindowSize {
		return models.TrendStable
	}

	recentAvg := mean(scores[:trendWindowSize])
	olderAvg := mean(scores[trendWindowSize : 2*trendWindowSize])

	switch {
	case recentAvg-olderAvg > trendThreshold:
		return models.TrendImproving
	case olderAvg-recentAvg > trendThreshold:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
