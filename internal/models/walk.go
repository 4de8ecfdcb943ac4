package models

import (
	"fmt"
	"time"
)

// WalkMode is the activity type of a recorded walk
type WalkMode string

const (
	ModeWalking WalkMode = "walking"
	ModeRunning WalkMode = "running"
	ModeCycling WalkMode = "cycling"
	ModeHiking  WalkMode = "hiking"
)

// ParseMode validates and converts a raw mode string
func ParseMode(s string) (WalkMode, error) {
	switch WalkMode(s) {
	case ModeWalking, ModeRunning, ModeCycling, ModeHiking:
		return WalkMode(s), nil
	}
	return "", fmt.Errorf("unknown walk mode %q", s)
}

// LocationSample is a raw fix delivered by the device location source.
// Altitude, speed and accuracy may be absent depending on the provider.
type LocationSample struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Altitude  *float64 `json:"altitude,omitempty"`  // Meters above sea level
	Speed     *float64 `json:"speed,omitempty"`     // Meters per second
	Accuracy  *float64 `json:"accuracy,omitempty"`  // Meters
	Timestamp int64    `json:"timestamp"`           // Unix timestamp in milliseconds
}

// RoutePoint is the trimmed projection of a sample retained in a walk's route
type RoutePoint struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Altitude  *float64 `json:"altitude,omitempty"`
	Timestamp int64    `json:"timestamp"` // Unix timestamp in milliseconds
}

// Walk represents one finalized tracked session
type Walk struct {
	ID            string       `json:"id"`
	Distance      float64      `json:"distance"` // Meters
	Duration      int          `json:"duration"` // Seconds
	Date          time.Time    `json:"date"`     // Completion time
	Route         []RoutePoint `json:"route"`
	AvgSpeed      float64      `json:"avgSpeed"` // km/h
	MaxSpeed      float64      `json:"maxSpeed"` // km/h
	Calories      int          `json:"calories"`
	Mode          WalkMode     `json:"mode"`
	Points        int          `json:"points"`   // Route length at finalization
	Accuracy      float64      `json:"accuracy"` // Last known GPS accuracy, meters
	ElevationGain int          `json:"elevationGain"` // Meters
	ElevationLoss int          `json:"elevationLoss"` // Meters
}

// WalkUpdate carries a partial correction to a stored walk. Nil fields are
// left untouched. Statistical fields changed here are not reflected in the
// running totals; callers needing that must remove and re-insert.
type WalkUpdate struct {
	Mode          *WalkMode `json:"mode,omitempty"`
	Calories      *int      `json:"calories,omitempty"`
	Accuracy      *float64  `json:"accuracy,omitempty"`
	ElevationGain *int      `json:"elevationGain,omitempty"`
	ElevationLoss *int      `json:"elevationLoss,omitempty"`
}

// RecorderStatus is a snapshot of the live recording state
type RecorderStatus struct {
	Recording    bool     `json:"recording"`
	Paused       bool     `json:"paused"`
	Mode         WalkMode `json:"mode,omitempty"`
	Distance     float64  `json:"distance"` // Meters
	Duration     int      `json:"duration"` // Seconds
	AvgSpeed     float64  `json:"avgSpeed"` // km/h
	MaxSpeed     float64  `json:"maxSpeed"` // km/h
	CurrentSpeed float64  `json:"currentSpeed"` // km/h
	Calories     float64  `json:"calories"`
	RoutePoints  int      `json:"routePoints"`
}
