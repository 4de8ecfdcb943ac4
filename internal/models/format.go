package models

import (
	"fmt"
	"math"
)

// Metabolic equivalents per mode, kept for reference alongside the
// placeholder calorie estimate used by the history store.
const (
	METWalking = 3.5
	METRunning = 7.0
	METCycling = 8.0
	METHiking  = 6.0
)

// FormatDistance renders meters as "842 m" or "1.24 km"
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}

// FormatDuration renders seconds as "mm:ss" or "h:mm:ss"
func FormatDuration(seconds int) string {
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60

	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatSpeed renders a speed in m/s as km/h with one decimal
func FormatSpeed(metersPerSecond float64) string {
	return fmt.Sprintf("%.1f km/h", metersPerSecond*3.6)
}

// FormatCalories renders a calorie value rounded to an integer
func FormatCalories(calories float64) string {
	return fmt.Sprintf("%d cal", int(math.Round(calories)))
}
