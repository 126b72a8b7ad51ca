package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"solixmon/internal/canvas"
	"solixmon/internal/fetchers"
	"solixmon/internal/logger"
	"solixmon/internal/models"
	"solixmon/internal/render"
)

// DefaultInterval is the scheduled refresh period
const DefaultInterval = 5 * time.Minute

// pollInterval is how often the loop checks for triggers between fetches
const pollInterval = 100 * time.Millisecond

// PointerSource reports pending pointer-down coordinates in surface
// space. A nil PointerSource is valid and means refreshes come from the
// timer and HTTP trigger only, as on builds without touch hardware.
type PointerSource interface {
	Points() []canvas.Point
}

// Options configures a Scheduler
type Options struct {
	Source   fetchers.Source
	Renderer *render.Renderer
	Surface  canvas.Surface
	Clock    Clock
	Pointer  PointerSource
	Interval time.Duration
	Points   int
	Logger   *logger.Logger
}

// Scheduler owns the refresh loop: it decides when to invoke the data
// source, merges the result into the current snapshot and redraws the
// surface. Fetches never overlap; all fetching and drawing happens on
// the single Run goroutine, HTTP readers only see published results.
type Scheduler struct {
	source   fetchers.Source
	renderer *render.Renderer
	surface  canvas.Surface
	clock    Clock
	pointer  PointerSource
	interval time.Duration
	points   int
	log      *logger.Logger

	trigger  chan struct{}
	fetching atomic.Bool

	// loop-goroutine state
	started     bool
	lastAttempt time.Time

	mu       sync.RWMutex
	snap     *models.Snapshot
	frame    []byte
	lastErr  string
	attempts int
}

// New creates a scheduler; zero option fields get sensible defaults
func New(opts Options) *Scheduler {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Points < 1 {
		opts.Points = models.DefaultPointsPerDay
	}
	if opts.Logger == nil {
		opts.Logger = logger.Global().WithComponent("scheduler")
	}
	return &Scheduler{
		source:   opts.Source,
		renderer: opts.Renderer,
		surface:  opts.Surface,
		clock:    opts.Clock,
		pointer:  opts.Pointer,
		interval: opts.Interval,
		points:   opts.Points,
		log:      opts.Logger,
		trigger:  make(chan struct{}, 1),
		snap:     models.NewSnapshot(opts.Points),
	}
}

// Run executes the refresh loop until the context is cancelled
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("refresh loop starting", map[string]interface{}{
		"source":   s.source.Name(),
		"interval": s.interval.String(),
	})

	// Paint the initial all-unknown frame so readers have content
	// before the first fetch completes.
	s.renderer.Draw(s.surface, s.Snapshot())
	s.publishFrame()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("refresh loop stopped")
			return
		case <-s.trigger:
			s.attempt(ctx)
		case <-ticker.C:
			s.Tick(ctx, s.clock.Now())
		}
	}
}

// Tick performs one loop iteration: if a refresh is due at now, a fetch
// is attempted. It returns whether a fetch was attempted.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) bool {
	if !s.due(now) {
		return false
	}
	s.attempt(ctx)
	return true
}

// due reports whether a fetch should start: on the very first iteration,
// when the refresh interval has elapsed since the last attempt, or when
// a pointer-down event lands inside the refresh control.
func (s *Scheduler) due(now time.Time) bool {
	if !s.started {
		return true
	}
	if now.Sub(s.lastAttempt) >= s.interval {
		return true
	}
	if s.pointer != nil {
		for _, p := range s.pointer.Points() {
			if render.HitsButton(p) {
				s.log.Debug("refresh control pressed")
				return true
			}
		}
	}
	return false
}

// attempt runs one fetch and redraws the surface. The attempt clock
// resets whether the fetch succeeds or fails, so repeated failures retry
// at the normal interval instead of storming the endpoint.
func (s *Scheduler) attempt(ctx context.Context) {
	s.fetching.Store(true)
	defer s.fetching.Store(false)

	s.started = true
	s.lastAttempt = s.clock.Now()

	reading, err := s.source.Fetch(ctx)
	if err != nil {
		s.log.Error("data fetch failed", err, map[string]interface{}{"source": s.source.Name()})
		s.mu.Lock()
		s.lastErr = err.Error()
		s.attempts++
		s.mu.Unlock()
		// Transient error screen; the previous snapshot stays current
		// and is redrawn on the next successful fetch.
		s.renderer.DrawMessage(s.surface, "Data fetch error")
		s.publishFrame()
		return
	}

	next, shapeOK := models.Apply(s.Snapshot(), reading, s.points)
	if !shapeOK {
		s.log.Warnf("curve length mismatch; expected %d samples per curve, keeping previous curves", s.points)
	}
	if tod, ok := s.clock.TimeOfDay(); ok {
		next.UpdatedAt = tod
	}

	s.mu.Lock()
	s.snap = next
	s.lastErr = ""
	s.attempts++
	s.mu.Unlock()

	s.renderer.Draw(s.surface, next)
	s.publishFrame()
	s.log.Debug("snapshot updated", map[string]interface{}{"updated_at": next.UpdatedAt})
}

// publishFrame captures the rendered surface as PNG bytes when the
// surface supports encoding
func (s *Scheduler) publishFrame() {
	enc, ok := s.surface.(interface{ EncodePNG() ([]byte, error) })
	if !ok {
		return
	}
	data, err := enc.EncodePNG()
	if err != nil {
		s.log.Error("frame encode failed", err)
		return
	}
	s.mu.Lock()
	s.frame = data
	s.mu.Unlock()
}

// TriggerRefresh requests an immediate fetch. It reports false when a
// fetch is already in flight; the pending fetch is never stacked.
func (s *Scheduler) TriggerRefresh() bool {
	if s.fetching.Load() {
		return false
	}
	select {
	case s.trigger <- struct{}{}:
	default:
	}
	return true
}

// Snapshot returns a copy of the most recently published snapshot
func (s *Scheduler) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// Frame returns the latest rendered PNG frame, nil if none exists yet
func (s *Scheduler) Frame() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame
}

// Fetching reports whether a fetch is currently in flight
func (s *Scheduler) Fetching() bool {
	return s.fetching.Load()
}

// LastError returns the failure message of the most recent attempt, or
// empty after a success
func (s *Scheduler) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Attempts returns the number of fetch attempts made so far
func (s *Scheduler) Attempts() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.attempts
}
