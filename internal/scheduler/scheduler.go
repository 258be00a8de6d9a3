package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Ticker is a job run on every schedule tick.
type Ticker interface {
	Tick()
}

// Scheduler periodically runs a Ticker (the widget clock).
type Scheduler struct {
	scheduler *gocron.Scheduler
	ticker    Ticker
	interval  time.Duration
}

// New creates a new Scheduler.
func New(ticker Ticker, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	// A tick still running when the next one is due is skipped, not queued.
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		ticker:    ticker,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens one interval after Start; callers tick once
// themselves beforehand.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = time.Minute
	}

	_, err := s.scheduler.Every(interval).WaitForSchedule().Do(func() {
		s.ticker.Tick()
	})
	if err != nil {
		return err
	}

	log.Printf("INFO: scheduler: clock ticking every %s", interval)
	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
