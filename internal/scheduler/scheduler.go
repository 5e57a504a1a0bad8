package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/zipcast/zipcast/internal/weather"
)

// Scheduler periodically re-ingests today's forecast for the configured ZIP
// codes so the serve-mode API stays warm. ZIPs are processed one at a time.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	zips      []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(zips []string, interval time.Duration, service *weather.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		zips:      zips,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.zips) == 0 {
		log.Println("scheduler: no zip codes configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running weather refresh job")

		for _, zip := range s.zips {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			rec, err := s.service.Ingest(ctx, zip)
			cancel()
			if err != nil {
				log.Printf("scheduler: refresh failed for zip %s: %v", zip, err)
				continue
			}
			log.Printf("scheduler: refreshed %s", rec.Key())
		}

		log.Println("scheduler: completed weather refresh job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
