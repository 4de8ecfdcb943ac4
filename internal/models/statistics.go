package models

// RunningStats represents cumulative statistics across the stored history.
// Maintained incrementally on insert and fully recomputed on remove.
type RunningStats struct {
	TotalDistance   float64 `json:"totalDistance"` // Meters
	TotalTime       int64   `json:"totalTime"`     // Seconds
	TotalWalks      int     `json:"totalWalks"`
	LongestWalk     float64 `json:"longestWalk"`  // Meters
	FastestSpeed    float64 `json:"fastestSpeed"` // km/h
	WalkingDistance float64 `json:"walkingDistance"`
	RunningDistance float64 `json:"runningDistance"`
	CyclingDistance float64 `json:"cyclingDistance"`
	HikingDistance  float64 `json:"hikingDistance"`
}

// FilteredStats summarizes an arbitrary subset of walks for on-demand
// reporting. Derived from a history snapshot, never persisted.
type FilteredStats struct {
	TotalDistance      float64 `json:"totalDistance"` // Meters
	TotalDuration      int64   `json:"totalDuration"` // Seconds
	TotalCalories      int     `json:"totalCalories"`
	TotalWalks         int     `json:"totalWalks"`
	AverageDistance    float64 `json:"averageDistance"` // Meters
	AverageDuration    float64 `json:"averageDuration"` // Seconds
	AverageSpeed       float64 `json:"averageSpeed"`    // km/h, mean of per-walk averages
	MaxSpeed           float64 `json:"maxSpeed"`        // km/h
	TotalElevationGain int     `json:"totalElevationGain"` // Meters
	TotalElevationLoss int     `json:"totalElevationLoss"` // Meters
}
