package history

import (
	"math"
	"sync"

	"github.com/waytrack/walks-backend-go/internal/models"
	"github.com/waytrack/walks-backend-go/internal/observability"
)

// DefaultMaxWalks bounds the retained history; oldest entries are dropped
// when an insert would exceed it.
const DefaultMaxWalks = 100

// Calorie multipliers per mode for the insert-time estimate. This is a
// placeholder physiological formula, not a clinical one.
var calorieMultipliers = map[models.WalkMode]float64{
	models.ModeWalking: 1.0,
	models.ModeRunning: 1.5,
	models.ModeCycling: 2.0,
	models.ModeHiking:  1.2,
}

// Store owns the bounded, newest-first walk history and its running
// statistics. Inserts update the statistics incrementally; removals
// recompute them from scratch, trading CPU on the rare path for a
// drift-free common path.
type Store struct {
	mu    sync.Mutex
	walks []models.Walk
	stats models.RunningStats
	max   int
}

// NewStore creates an empty history bounded to max walks.
// Non-positive max falls back to DefaultMaxWalks.
func NewStore(max int) *Store {
	if max <= 0 {
		max = DefaultMaxWalks
	}
	return &Store{max: max}
}

// Insert enriches the walk, prepends it to the history and updates the
// running statistics. Returns the stored (possibly enriched) walk.
func (s *Store) Insert(walk models.Walk) models.Walk {
	s.mu.Lock()
	defer s.mu.Unlock()

	if walk.Calories == 0 {
		walk.Calories = estimateCalories(walk.Duration, walk.Mode)
	}

	if len(walk.Route) > 1 {
		gain, loss := elevationDeltas(walk.Route)
		walk.ElevationGain = gain
		walk.ElevationLoss = loss
	}

	s.walks = append([]models.Walk{walk}, s.walks...)

	s.stats.TotalDistance += walk.Distance
	s.stats.TotalTime += int64(walk.Duration)
	s.stats.TotalWalks++
	s.stats.LongestWalk = math.Max(s.stats.LongestWalk, walk.Distance)
	s.stats.FastestSpeed = math.Max(s.stats.FastestSpeed, walk.MaxSpeed)
	s.addModeDistance(walk.Mode, walk.Distance)

	if len(s.walks) > s.max {
		kept := make([]models.Walk, s.max)
		copy(kept, s.walks[:s.max])
		s.walks = kept
	}

	observability.SetHistorySize(len(s.walks))
	return walk
}

// Remove deletes the walk with the given id and recomputes the running
// statistics from the remaining history. Unknown ids are a silent no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return
	}

	s.walks = append(s.walks[:idx], s.walks[idx+1:]...)
	s.recompute()

	observability.RecordRemove()
	observability.SetHistorySize(len(s.walks))
}

// Clear empties the history and zeroes the running statistics
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.walks = nil
	s.stats = models.RunningStats{}
	observability.SetHistorySize(0)
}

// Update merges a partial correction into the stored walk. The running
// statistics are deliberately left untouched; callers changing fields the
// statistics depend on must remove and re-insert instead.
// Returns false when no walk has the given id.
func (s *Store) Update(id string, update models.WalkUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	walk := &s.walks[idx]
	if update.Mode != nil {
		walk.Mode = *update.Mode
	}
	if update.Calories != nil {
		walk.Calories = *update.Calories
	}
	if update.Accuracy != nil {
		walk.Accuracy = *update.Accuracy
	}
	if update.ElevationGain != nil {
		walk.ElevationGain = *update.ElevationGain
	}
	if update.ElevationLoss != nil {
		walk.ElevationLoss = *update.ElevationLoss
	}
	return true
}

// History returns a snapshot copy of the stored walks, newest first
func (s *Store) History() []models.Walk {
	s.mu.Lock()
	defer s.mu.Unlock()

	walks := make([]models.Walk, len(s.walks))
	copy(walks, s.walks)
	return walks
}

// Stats returns the current running statistics
func (s *Store) Stats() models.RunningStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Len returns the number of stored walks
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.walks)
}

func (s *Store) indexOf(id string) int {
	for i := range s.walks {
		if s.walks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) addModeDistance(mode models.WalkMode, distance float64) {
	switch mode {
	case models.ModeWalking:
		s.stats.WalkingDistance += distance
	case models.ModeRunning:
		s.stats.RunningDistance += distance
	case models.ModeCycling:
		s.stats.CyclingDistance += distance
	case models.ModeHiking:
		s.stats.HikingDistance += distance
	}
}

// recompute rebuilds the running statistics from the current history.
// Caller must hold the mutex.
func (s *Store) recompute() {
	stats := models.RunningStats{TotalWalks: len(s.walks)}
	for _, w := range s.walks {
		stats.TotalDistance += w.Distance
		stats.TotalTime += int64(w.Duration)
		stats.LongestWalk = math.Max(stats.LongestWalk, w.Distance)
		stats.FastestSpeed = math.Max(stats.FastestSpeed, w.MaxSpeed)

		switch w.Mode {
		case models.ModeWalking:
			stats.WalkingDistance += w.Distance
		case models.ModeRunning:
			stats.RunningDistance += w.Distance
		case models.ModeCycling:
			stats.CyclingDistance += w.Distance
		case models.ModeHiking:
			stats.HikingDistance += w.Distance
		}
	}
	s.stats = stats
}

// estimateCalories applies the flat insert-time estimate
// round(70 * 5 * hours * multiplier) for walks recorded without one.
func estimateCalories(durationSeconds int, mode models.WalkMode) int {
	hours := float64(durationSeconds) / 3600
	multiplier, ok := calorieMultipliers[mode]
	if !ok {
		multiplier = 1.0
	}
	return int(math.Round(70 * 5 * hours * multiplier))
}

// elevationDeltas accumulates positive altitude deltas into gain and the
// absolute value of negative deltas into loss over consecutive route
// pairs. Pairs with a missing altitude on either side contribute nothing.
func elevationDeltas(route []models.RoutePoint) (gain, loss int) {
	var g, l float64
	for i := 1; i < len(route); i++ {
		prev := route[i-1].Altitude
		curr := route[i].Altitude
		if prev == nil || curr == nil {
			continue
		}

		diff := *curr - *prev
		if diff > 0 {
			g += diff
		} else {
			l += math.Abs(diff)
		}
	}
	return int(math.Round(g)), int(math.Round(l))
}
