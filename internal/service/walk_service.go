package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/waytrack/walks-backend-go/internal/history"
	"github.com/waytrack/walks-backend-go/internal/models"
	"github.com/waytrack/walks-backend-go/internal/recorder"
)

// WalkService wires the track recorder and the history store behind one
// facade and owns the once-per-second tick loop, so the transport layer
// never touches recorder scheduling.
type WalkService struct {
	rec   *recorder.Recorder
	store *history.Store

	tickInterval time.Duration
	now          func() time.Time

	mu       sync.Mutex
	stopTick chan struct{}
}

// NewWalkService creates a service around the given recorder and store
func NewWalkService(rec *recorder.Recorder, store *history.Store) *WalkService {
	return &WalkService{
		rec:          rec,
		store:        store,
		tickInterval: time.Second,
		now:          time.Now,
	}
}

// StartRecording begins a session in the given mode and starts the tick
// loop driving duration and calorie accrual.
func (s *WalkService) StartRecording(mode string) error {
	parsed, err := models.ParseMode(mode)
	if err != nil {
		return err
	}

	if err := s.rec.Start(parsed); err != nil {
		return fmt.Errorf("start recording: %w", err)
	}

	s.startTicker()
	return nil
}

// PauseRecording suspends the session; ticks and samples are ignored
// until resumed. Safe to call repeatedly.
func (s *WalkService) PauseRecording() {
	s.rec.Pause()
}

// ResumeRecording restarts a paused session. Safe to call repeatedly.
func (s *WalkService) ResumeRecording() {
	s.rec.Resume()
}

// StopRecording finalizes the session. When the session clears the
// acceptance thresholds the walk is inserted into the history and
// returned; otherwise (nil, false) — a discarded session, not an error.
func (s *WalkService) StopRecording() (*models.Walk, bool) {
	s.stopTicker()

	walk, ok := s.rec.Stop()
	if !ok {
		return nil, false
	}

	saved := s.store.Insert(*walk)
	return &saved, true
}

// AddSample forwards a location sample to the recorder. Samples arriving
// outside an active session are dropped silently.
func (s *WalkService) AddSample(sample models.LocationSample) {
	if sample.Timestamp == 0 {
		sample.Timestamp = s.now().UnixMilli()
	}
	s.rec.ProcessSample(sample)
}

// Status reports the live recording state
func (s *WalkService) Status() models.RecorderStatus {
	return s.rec.Status()
}

// History applies the filter to a history snapshot and returns the
// matching walks together with their summary statistics.
func (s *WalkService) History(filter models.HistoryFilter) ([]models.Walk, models.FilteredStats, error) {
	if err := validateFilter(filter); err != nil {
		return nil, models.FilteredStats{}, err
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = models.SortByDate
	}
	descending := filter.Order != "asc"

	walks := s.store.History()
	walks = history.FilterByMode(walks, filter.Mode)
	walks = history.FilterByTime(walks, filter.Range, s.now())
	walks = history.SortWalks(walks, sortBy, descending)

	return walks, history.Summarize(walks), nil
}

// Stats returns the running cross-walk statistics
func (s *WalkService) Stats() models.RunningStats {
	return s.store.Stats()
}

// ImportWalk validates and stores an externally finalized walk, assigning
// an id when absent. Used by clients syncing walks recorded offline.
func (s *WalkService) ImportWalk(walk models.Walk) (models.Walk, error) {
	if _, err := models.ParseMode(string(walk.Mode)); err != nil {
		return models.Walk{}, err
	}
	if walk.Distance < 0 {
		return models.Walk{}, fmt.Errorf("distance must not be negative")
	}
	if walk.Duration < 0 {
		return models.Walk{}, fmt.Errorf("duration must not be negative")
	}

	if walk.ID == "" {
		walk.ID = uuid.NewString()
	}
	if walk.Date.IsZero() {
		walk.Date = s.now()
	}
	if walk.Points == 0 {
		walk.Points = len(walk.Route)
	}

	return s.store.Insert(walk), nil
}

// RemoveWalk deletes a stored walk. Unknown ids are a silent no-op.
func (s *WalkService) RemoveWalk(id string) {
	s.store.Remove(id)
}

// UpdateWalk merges a partial correction into a stored walk
func (s *WalkService) UpdateWalk(id string, update models.WalkUpdate) bool {
	return s.store.Update(id, update)
}

// ClearHistory empties the history and resets the running statistics
func (s *WalkService) ClearHistory() {
	s.store.Clear()
}

func (s *WalkService) startTicker() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopTick != nil {
		return
	}

	stop := make(chan struct{})
	s.stopTick = stop

	go func() {
		ticker := time.NewTicker(s.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.rec.Tick()
			case <-stop:
				return
			}
		}
	}()
}

func (s *WalkService) stopTicker() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopTick != nil {
		close(s.stopTick)
		s.stopTick = nil
	}
}

func validateFilter(filter models.HistoryFilter) error {
	switch filter.Mode {
	case "", "all", string(models.ModeWalking), string(models.ModeRunning),
		string(models.ModeCycling), string(models.ModeHiking):
	default:
		return fmt.Errorf("unknown mode filter %q", filter.Mode)
	}

	switch filter.Range {
	case "", models.RangeAll, models.RangeToday, models.RangeWeek, models.RangeMonth:
	default:
		return fmt.Errorf("unknown time range %q", filter.Range)
	}

	switch filter.SortBy {
	case "", models.SortByDate, models.SortByDistance, models.SortByDuration,
		models.SortByCalories, models.SortBySpeed, models.SortByElevation:
	default:
		return fmt.Errorf("unknown sort key %q", filter.SortBy)
	}

	switch filter.Order {
	case "", "asc", "desc":
	default:
		return fmt.Errorf("unknown sort order %q", filter.Order)
	}

	return nil
}
