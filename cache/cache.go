package cache

import (
	"sync"
	"time"

	"pathfinder-server/entities"
)

type ActivityPoint struct {
	Event    entities.LearningAnalytics
	CachedAt time.Time
}

// ActivityBuffer accumulates analytics events in memory so they can be
// bulk-inserted instead of hitting the store one row per request.
type ActivityBuffer struct {
	mu     sync.Mutex
	events map[string][]ActivityPoint // map[userID][]events
}

func NewActivityBuffer() *ActivityBuffer {
	return &ActivityBuffer{events: make(map[string][]ActivityPoint)}
}

// Add appends an event to the buffer.
func (b *ActivityBuffer) Add(event entities.LearningAnalytics) {
	b.mu.Lock()
	defer b.mu.Unlock()

	userID := event.UserID
	b.events[userID] = append(b.events[userID], ActivityPoint{
		Event:    event,
		CachedAt: time.Now(),
	})
}

// Drain returns all buffered events and empties the buffer.
func (b *ActivityBuffer) Drain() []entities.LearningAnalytics {
	b.mu.Lock()
	defer b.mu.Unlock()

	var all []entities.LearningAnalytics
	for _, points := range b.events {
		for _, p := range points {
			all = append(all, p.Event)
		}
	}
	b.events = make(map[string][]ActivityPoint)
	return all
}

// Snapshot returns a copy of the current buffer contents.
func (b *ActivityBuffer) Snapshot() map[string][]ActivityPoint {
	b.mu.Lock()
	defer b.mu.Unlock()

	all := make(map[string][]ActivityPoint, len(b.events))
	for userID, points := range b.events {
		all[userID] = make([]ActivityPoint, len(points))
		copy(all[userID], points)
	}
	return all
}

// Stats returns counters about the current buffer.
func (b *ActivityBuffer) Stats() map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	total := 0
	for _, points := range b.events {
		total += len(points)
	}
	return map[string]interface{}{
		"users_buffered": len(b.events),
		"total_events":   total,
	}
}
