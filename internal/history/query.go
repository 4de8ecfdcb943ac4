package history

import (
	"sort"
	"time"

	"github.com/waytrack/walks-backend-go/internal/models"
)

// FilterByMode returns the walks matching the given mode, preserving
// order. "all" or an empty mode returns the input unchanged.
func FilterByMode(walks []models.Walk, mode string) []models.Walk {
	if mode == "" || mode == "all" {
		return walks
	}

	var filtered []models.Walk
	for _, w := range walks {
		if string(w.Mode) == mode {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// FilterByTime returns the walks within the given range relative to now:
// "today" matches the current calendar day, "week" keeps walks dated
// within the last 7 days, "month" within the last calendar month.
func FilterByTime(walks []models.Walk, timeRange string, now time.Time) []models.Walk {
	if timeRange == "" || timeRange == models.RangeAll {
		return walks
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)
	monthAgo := today.AddDate(0, -1, 0)

	var filtered []models.Walk
	for _, w := range walks {
		d := w.Date
		keep := false

		switch timeRange {
		case models.RangeToday:
			dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
			keep = dayStart.Equal(today)
		case models.RangeWeek:
			keep = !d.Before(weekAgo)
		case models.RangeMonth:
			keep = !d.Before(monthAgo)
		}

		if keep {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// SortWalks returns a copy of walks ordered by the given key. "speed"
// orders by max speed, "elevation" by gain + loss. Ties keep their
// prior relative order.
func SortWalks(walks []models.Walk, sortBy string, descending bool) []models.Walk {
	sorted := make([]models.Walk, len(walks))
	copy(sorted, walks)

	value := func(w models.Walk) float64 {
		switch sortBy {
		case models.SortByDate:
			return float64(w.Date.UnixMilli())
		case models.SortByDistance:
			return w.Distance
		case models.SortByDuration:
			return float64(w.Duration)
		case models.SortByCalories:
			return float64(w.Calories)
		case models.SortBySpeed:
			return w.MaxSpeed
		case models.SortByElevation:
			return float64(w.ElevationGain + w.ElevationLoss)
		}
		return 0
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return value(sorted[i]) > value(sorted[j])
		}
		return value(sorted[i]) < value(sorted[j])
	})
	return sorted
}

// Summarize derives aggregate statistics over an arbitrary walk subset.
// An empty input yields all-zero statistics.
func Summarize(walks []models.Walk) models.FilteredStats {
	if len(walks) == 0 {
		return models.FilteredStats{}
	}

	var stats models.FilteredStats
	var speedSum float64

	for _, w := range walks {
		stats.TotalDistance += w.Distance
		stats.TotalDuration += int64(w.Duration)
		stats.TotalCalories += w.Calories
		stats.TotalElevationGain += w.ElevationGain
		stats.TotalElevationLoss += w.ElevationLoss
		speedSum += w.AvgSpeed

		if w.MaxSpeed > stats.MaxSpeed {
			stats.MaxSpeed = w.MaxSpeed
		}
	}

	count := len(walks)
	stats.TotalWalks = count
	stats.AverageDistance = stats.TotalDistance / float64(count)
	stats.AverageDuration = float64(stats.TotalDuration) / float64(count)
	stats.AverageSpeed = speedSum / float64(count)
	return stats
}
