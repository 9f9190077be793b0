package services

import (
	"log"
	"time"

	"pathfinder-server/cache"
	"pathfinder-server/entities"
	"pathfinder-server/repositories"
)

// ActivityRecorder buffers analytics events and flushes them to the store
// on an interval so dashboard writes don't cost one insert per request.
type ActivityRecorder struct {
	buffer   *cache.ActivityBuffer
	repo     repositories.AnalyticsRepository
	interval time.Duration
}

func NewActivityRecorder(repo repositories.AnalyticsRepository, interval time.Duration) *ActivityRecorder {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ActivityRecorder{
		buffer:   cache.NewActivityBuffer(),
		repo:     repo,
		interval: interval,
	}
}

// Start launches the periodic flush goroutine.
func (r *ActivityRecorder) Start() {
	ticker := time.NewTicker(r.interval)
	go func() {
		for range ticker.C {
			r.Flush()
		}
	}()
}

// Record buffers one event for the next flush.
func (r *ActivityRecorder) Record(event entities.LearningAnalytics) {
	r.buffer.Add(event)
}

// Flush bulk-inserts everything currently buffered. Returns the number of
// rows written.
func (r *ActivityRecorder) Flush() int {
	events := r.buffer.Drain()
	if len(events) == 0 {
		return 0
	}
	if err := r.repo.CreateBatch(events); err != nil {
		log.Printf("error bulk inserting %d analytics events: %v", len(events), err)
		// Put them back so the next flush retries
		for _, e := range events {
			r.buffer.Add(e)
		}
		return 0
	}
	log.Printf("flushed %d analytics events", len(events))
	return len(events)
}

// Snapshot exposes the buffered events for inspection endpoints.
func (r *ActivityRecorder) Snapshot() map[string][]cache.ActivityPoint {
	return r.buffer.Snapshot()
}

// Stats exposes buffer counters for inspection endpoints.
func (r *ActivityRecorder) Stats() map[string]interface{} {
	return r.buffer.Stats()
}
