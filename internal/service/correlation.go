package service

import (
	"math"
	"sort"

	"github.com/hugmood/hugmood/backend/internal/models"
)

const (
	// Minimum overlapping days before a factor is reported at all
	minDaysForCorrelation = 3

	// |r| thresholds for impact classification
	correlationStrongMin   = 0.6
	correlationModerateMin = 0.3

	// Reserved activity types with a numeric daily magnitude
	factorSleep      = "sleep"
	factorScreenTime = "screen_time"
)

// computeCorrelations builds aligned per-calendar-day series of mean mood
// score against each tracked factor and reports the Pearson coefficient
// for every factor with enough overlapping days. Factors come from mood
// entry activity tags and from logged activity types; logged durations
// take precedence over bare presence for a day's factor value.
func computeCorrelations(entries []models.MoodEntry, logs []models.ActivityLog) []models.CorrelationResult {
	moodByDay := dailyMoodMeans(entries)
	if len(moodByDay) < minDaysForCorrelation {
		return nil
	}

	days := make([]string, 0, len(moodByDay))
	for day := range moodByDay {
		days = append(days, day)
	}
	sort.Strings(days)

	factors := collectFactorSeries(entries, logs)

	names := make([]string, 0, len(factors))
	for name := range factors {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]models.CorrelationResult, 0, len(names))
	for _, name := range names {
		series := factors[name]

		moodSeries := make([]float64, len(days))
		factorSeries := make([]float64, len(days))
		for i, day := range days {
			moodSeries[i] = moodByDay[day]
			factorSeries[i] = series[day]
		}

		r := pearson(moodSeries, factorSeries)

		direction := models.DirectionPositive
		if r < 0 {
			direction = models.DirectionNegative
		}

		results = append(results, models.CorrelationResult{
			Factor:      name,
			Coefficient: r,
			Impact:      classifyImpact(r),
			Direction:   direction,
			SampleDays:  len(days),
		})
	}

	return results
}

// dailyMoodMeans groups scored entries by UTC calendar day
func dailyMoodMeans(entries []models.MoodEntry) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, entry := range entries {
		if entry.Score == 0 {
			continue
		}
		day := entry.CreatedAt.UTC().Format("2006-01-02")
		sums[day] += float64(entry.Score)
		counts[day]++
	}

	means := make(map[string]float64, len(sums))
	for day, sum := range sums {
		means[day] = sum / float64(counts[day])
	}
	return means
}

// collectFactorSeries builds the per-day value map for every factor.
// Activity tags on mood entries contribute presence (1); activity logs
// contribute presence, or the summed daily duration when one is logged.
func collectFactorSeries(entries []models.MoodEntry, logs []models.ActivityLog) map[string]map[string]float64 {
	factors := make(map[string]map[string]float64)

	set := func(factor, day string, value float64) {
		if factors[factor] == nil {
			factors[factor] = make(map[string]float64)
		}
		if value > factors[factor][day] {
			factors[factor][day] = value
		}
	}

	for _, entry := range entries {
		day := entry.CreatedAt.UTC().Format("2006-01-02")
		for _, tag := range entry.Activities {
			set(tag, day, 1)
		}
	}

	durations := make(map[string]map[string]float64)
	for _, log := range logs {
		day := log.CreatedAt.UTC().Format("2006-01-02")
		if log.DurationMinutes != nil {
			if durations[log.ActivityType] == nil {
				durations[log.ActivityType] = make(map[string]float64)
			}
			durations[log.ActivityType][day] += *log.DurationMinutes
		} else {
			set(log.ActivityType, day, 1)
		}
	}

	// Summed durations replace presence values for the same day
	for factor, byDay := range durations {
		for day, total := range byDay {
			if factors[factor] == nil {
				factors[factor] = make(map[string]float64)
			}
			factors[factor][day] = total
		}
	}

	return factors
}

// pearson computes the Pearson correlation coefficient of two aligned
// series. Zero variance in either series is defined as no correlation.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}

	return cov / math.Sqrt(varX*varY)
}

// classifyImpact maps |r| onto the documented bands
func classifyImpact(r float64) models.Impact {
	abs := math.Abs(r)
	switch {
	case abs >= correlationStrongMin:
		return models.ImpactStrong
	case abs >= correlationModerateMin:
		return models.ImpactModerate
	default:
		return models.ImpactWeak
	}
}
