package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waytrack/walks-backend-go/internal/models"
)

func datedWalk(id string, date time.Time) models.Walk {
	w := testWalk(id, 1000, models.ModeWalking)
	w.Date = date
	return w
}

func TestFilterByMode(t *testing.T) {
	a := testWalk("a", 1000, models.ModeWalking)
	b := testWalk("b", 2000, models.ModeRunning)
	c := testWalk("c", 1500, models.ModeRunning)
	walks := []models.Walk{a, b, c}

	running := FilterByMode(walks, "running")
	require.Len(t, running, 2)
	assert.Equal(t, "b", running[0].ID)
	assert.Equal(t, "c", running[1].ID)

	assert.Len(t, FilterByMode(walks, "all"), 3)
	assert.Len(t, FilterByMode(walks, ""), 3)
	assert.Empty(t, FilterByMode(walks, "cycling"))
}

func TestFilterByTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	thisMorning := datedWalk("today", time.Date(2026, 8, 30, 7, 30, 0, 0, time.UTC))
	threeDaysAgo := datedWalk("3d", now.AddDate(0, 0, -3))
	twentyDaysAgo := datedWalk("20d", now.AddDate(0, 0, -20))
	twoMonthsAgo := datedWalk("2mo", now.AddDate(0, -2, 0))
	walks := []models.Walk{thisMorning, threeDaysAgo, twentyDaysAgo, twoMonthsAgo}

	tests := []struct {
		timeRange string
		wantIDs   []string
	}{
		{models.RangeAll, []string{"today", "3d", "20d", "2mo"}},
		{models.RangeToday, []string{"today"}},
		{models.RangeWeek, []string{"today", "3d"}},
		{models.RangeMonth, []string{"today", "3d", "20d"}},
	}

	for _, tt := range tests {
		t.Run(tt.timeRange, func(t *testing.T) {
			got := FilterByTime(walks, tt.timeRange, now)
			require.Len(t, got, len(tt.wantIDs))
			for i, id := range tt.wantIDs {
				assert.Equal(t, id, got[i].ID)
			}
		})
	}
}

func TestFilterByTimeCalendarDay(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 10, 0, 0, time.UTC)

	// Late yesterday is not "today" even though it is under 24h ago
	lateYesterday := datedWalk("y", time.Date(2026, 8, 29, 23, 50, 0, 0, time.UTC))
	got := FilterByTime([]models.Walk{lateYesterday}, models.RangeToday, now)
	assert.Empty(t, got)
}

func TestSortWalks(t *testing.T) {
	a := testWalk("a", 1000, models.ModeWalking)
	a.Duration = 300
	a.Calories = 100
	a.MaxSpeed = 5
	a.ElevationGain = 10
	a.ElevationLoss = 5
	a.Date = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	b := testWalk("b", 2000, models.ModeRunning)
	b.Duration = 200
	b.Calories = 300
	b.MaxSpeed = 10
	b.ElevationGain = 2
	b.ElevationLoss = 1
	b.Date = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	walks := []models.Walk{a, b}

	tests := []struct {
		sortBy     string
		descending bool
		wantFirst  string
	}{
		{models.SortByDate, true, "b"},
		{models.SortByDate, false, "a"},
		{models.SortByDistance, true, "b"},
		{models.SortByDistance, false, "a"},
		{models.SortByDuration, true, "a"},
		{models.SortByCalories, true, "b"},
		{models.SortBySpeed, true, "b"},
		{models.SortByElevation, true, "a"}, // 15 vs 3
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			got := SortWalks(walks, tt.sortBy, tt.descending)
			require.Len(t, got, 2)
			assert.Equal(t, tt.wantFirst, got[0].ID)
		})
	}
}

func TestSortWalksStableOnTies(t *testing.T) {
	a := testWalk("a", 1000, models.ModeWalking)
	b := testWalk("b", 1000, models.ModeRunning)
	c := testWalk("c", 1000, models.ModeCycling)

	got := SortWalks([]models.Walk{a, b, c}, models.SortByDistance, true)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestSortWalksDoesNotMutateInput(t *testing.T) {
	a := testWalk("a", 1000, models.ModeWalking)
	b := testWalk("b", 2000, models.ModeRunning)
	walks := []models.Walk{a, b}

	SortWalks(walks, models.SortByDistance, true)
	assert.Equal(t, "a", walks[0].ID)
}

func TestSummarize(t *testing.T) {
	a := testWalk("a", 1000, models.ModeWalking)
	a.Duration = 600
	a.Calories = 100
	a.AvgSpeed = 4
	a.MaxSpeed = 5
	a.ElevationGain = 10
	a.ElevationLoss = 4

	b := testWalk("b", 2000, models.ModeRunning)
	b.Duration = 900
	b.Calories = 300
	b.AvgSpeed = 8
	b.MaxSpeed = 10
	b.ElevationGain = 20
	b.ElevationLoss = 6

	stats := Summarize([]models.Walk{a, b})
	assert.Equal(t, 3000.0, stats.TotalDistance)
	assert.Equal(t, int64(1500), stats.TotalDuration)
	assert.Equal(t, 400, stats.TotalCalories)
	assert.Equal(t, 2, stats.TotalWalks)
	assert.Equal(t, 1500.0, stats.AverageDistance)
	assert.Equal(t, 750.0, stats.AverageDuration)
	assert.Equal(t, 6.0, stats.AverageSpeed) // Mean of per-walk averages
	assert.Equal(t, 10.0, stats.MaxSpeed)
	assert.Equal(t, 30, stats.TotalElevationGain)
	assert.Equal(t, 10, stats.TotalElevationLoss)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, models.FilteredStats{}, Summarize(nil))
	assert.Equal(t, models.FilteredStats{}, Summarize([]models.Walk{}))
}

// End-to-end over the documented reporting scenario: filter, sort and
// summarize a two-walk history.
func TestReportingScenario(t *testing.T) {
	a := testWalk("A", 1000, models.ModeWalking)
	a.MaxSpeed = 5
	b := testWalk("B", 2000, models.ModeRunning)
	b.MaxSpeed = 10
	walks := []models.Walk{a, b}

	running := FilterByMode(walks, "running")
	require.Len(t, running, 1)
	assert.Equal(t, "B", running[0].ID)

	byDistance := SortWalks(walks, models.SortByDistance, true)
	assert.Equal(t, "B", byDistance[0].ID)
	assert.Equal(t, "A", byDistance[1].ID)

	stats := Summarize(walks)
	assert.Equal(t, 3000.0, stats.TotalDistance)
	assert.Equal(t, 1500.0, stats.AverageDistance)
}
