package models

// Time range keys for history filtering
const (
	RangeAll   = "all"
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// Sort keys for history listing
const (
	SortByDate      = "date"
	SortByDistance  = "distance"
	SortByDuration  = "duration"
	SortByCalories  = "calories"
	SortBySpeed     = "speed"     // Sorts by max speed
	SortByElevation = "elevation" // Sorts by gain + loss
)

// HistoryFilter represents query parameters for listing walks
type HistoryFilter struct {
	Mode   string `form:"mode"`   // walking, running, cycling, hiking, or "all"
	Range  string `form:"range"`  // all, today, week, month
	SortBy string `form:"sortBy"` // date, distance, duration, calories, speed, elevation
	Order  string `form:"order"`  // asc or desc
}
