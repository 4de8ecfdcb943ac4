package recorder

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/waytrack/walks-backend-go/internal/models"
	"github.com/waytrack/walks-backend-go/internal/observability"
	"github.com/waytrack/walks-backend-go/internal/spatial"
)

// ErrAlreadyRecording is returned by Start when a session is in progress
var ErrAlreadyRecording = errors.New("recording already in progress")

const (
	// Segments at or above this length are treated as GPS jumps and
	// excluded from distance accumulation. The point is still kept in
	// the route so the displayed track stays continuous.
	maxSegmentMeters = 100.0

	// Route memory bound: when the retained route grows past
	// routeMaxPoints, only the most recent routeKeepPoints survive.
	routeMaxPoints  = 500
	routeKeepPoints = 250

	// Session acceptance thresholds at stop time
	minRoutePoints    = 2  // Route must have more than this many points
	minDistanceMeters = 10 // Accumulated distance must exceed this

	// Flat per-tick calorie rate (0.05 * 1.2 per second)
	caloriesPerTick = 0.05 * 1.2
)

// Recorder consumes a stream of location samples and maintains the live
// route and derived metrics for at most one active session. Tick and
// ProcessSample may be called from different goroutines; all state is
// guarded by a single mutex.
type Recorder struct {
	mu sync.Mutex

	recording bool
	paused    bool
	mode      models.WalkMode

	route        []models.RoutePoint
	distance     float64 // Meters
	duration     int     // Seconds, advanced by Tick
	calories     float64
	avgSpeed     float64 // km/h
	maxSpeed     float64 // km/h
	currentSpeed float64 // km/h
	accuracy     float64 // Last known, meters
	startTime    time.Time

	now func() time.Time
}

// New creates an idle recorder
func New() *Recorder {
	return &Recorder{now: time.Now}
}

// Start begins a new recording session, resetting all accumulators.
// Returns ErrAlreadyRecording if a session is in progress.
func (r *Recorder) Start(mode models.WalkMode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return ErrAlreadyRecording
	}

	r.recording = true
	r.paused = false
	r.mode = mode
	r.route = nil
	r.distance = 0
	r.duration = 0
	r.calories = 0
	r.avgSpeed = 0
	r.maxSpeed = 0
	r.currentSpeed = 0
	r.accuracy = 0
	r.startTime = r.now()

	return nil
}

// ProcessSample folds one location sample into the live session. Samples
// arriving while idle or paused are silently ignored; the location source
// may keep emitting during a pause.
func (r *Recorder) ProcessSample(sample models.LocationSample) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording || r.paused {
		return
	}

	point := models.RoutePoint{
		Latitude:  sample.Latitude,
		Longitude: sample.Longitude,
		Altitude:  sample.Altitude,
		Timestamp: sample.Timestamp,
	}

	speedKmh := 0.0
	if sample.Speed != nil {
		speedKmh = *sample.Speed * 3.6
	}
	r.currentSpeed = speedKmh
	if speedKmh > r.maxSpeed {
		r.maxSpeed = speedKmh
	}

	if sample.Accuracy != nil {
		r.accuracy = *sample.Accuracy
	}

	if len(r.route) > 0 {
		last := r.route[len(r.route)-1]
		segment := spatial.DistanceMeters(last.Latitude, last.Longitude, sample.Latitude, sample.Longitude)

		if segment < maxSegmentMeters {
			r.distance += segment

			elapsed := r.now().Sub(r.startTime).Seconds()
			if elapsed > 0 {
				r.avgSpeed = r.distance / elapsed * 3.6
			}
			observability.RecordSample(true)
		} else {
			observability.RecordSample(false)
		}
	} else {
		observability.RecordSample(true)
	}

	r.route = append(r.route, point)
	if len(r.route) > routeMaxPoints {
		kept := make([]models.RoutePoint, routeKeepPoints)
		copy(kept, r.route[len(r.route)-routeKeepPoints:])
		r.route = kept
	}
}

// Tick advances the session clock by one second and accrues the flat
// calorie estimate. Driven by an external scheduler while recording.
func (r *Recorder) Tick() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording || r.paused {
		return
	}

	r.duration++
	r.calories += caloriesPerTick
}

// Pause suspends sample processing and ticking. Safe to call repeatedly.
func (r *Recorder) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		r.paused = true
	}
}

// Resume restarts a paused session. Safe to call repeatedly.
func (r *Recorder) Resume() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		r.paused = false
	}
}

// Stop finalizes the session. A walk is produced only when the route has
// more than minRoutePoints points and the accumulated distance exceeds
// minDistanceMeters; anything shorter is discarded as an accidental start,
// which is a valid outcome rather than an error. The recorder returns to
// idle either way. Elevation gain and loss are derived later by the
// history store so route-derived fields have a single source of truth.
func (r *Recorder) Stop() (*models.Walk, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil, false
	}

	r.recording = false
	r.paused = false

	if len(r.route) <= minRoutePoints || r.distance <= minDistanceMeters {
		r.route = nil
		observability.RecordStop(false)
		return nil, false
	}

	route := make([]models.RoutePoint, len(r.route))
	copy(route, r.route)

	walk := &models.Walk{
		ID:       uuid.NewString(),
		Distance: r.distance,
		Duration: r.duration,
		Date:     r.now(),
		Route:    route,
		AvgSpeed: r.avgSpeed,
		MaxSpeed: r.maxSpeed,
		Calories: int(math.Round(r.calories)),
		Mode:     r.mode,
		Points:   len(route),
		Accuracy: r.accuracy,
	}

	r.route = nil
	observability.RecordStop(true)
	return walk, true
}

// Status returns a snapshot of the live session state
func (r *Recorder) Status() models.RecorderStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := models.RecorderStatus{
		Recording:    r.recording,
		Paused:       r.paused,
		Distance:     r.distance,
		Duration:     r.duration,
		AvgSpeed:     r.avgSpeed,
		MaxSpeed:     r.maxSpeed,
		CurrentSpeed: r.currentSpeed,
		Calories:     r.calories,
		RoutePoints:  len(r.route),
	}
	if r.recording {
		status.Mode = r.mode
	}
	return status
}
