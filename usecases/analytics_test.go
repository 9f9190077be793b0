package usecases

import (
	"errors"
	"testing"
	"time"

	"pathfinder-server/entities"

	"github.com/google/uuid"
)

type memAnalyticsRepo struct {
	rows []entities.LearningAnalytics
}

func (r *memAnalyticsRepo) Create(row *entities.LearningAnalytics) error {
	if row.ID == "" {
		row.ID = uuid.New().String()
	}
	r.rows = append(r.rows, *row)
	return nil
}

func (r *memAnalyticsRepo) CreateBatch(rows []entities.LearningAnalytics) error {
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *memAnalyticsRepo) GetByUserIDSince(userID string, since time.Time) ([]entities.LearningAnalytics, error) {
	var out []entities.LearningAnalytics
	for _, row := range r.rows {
		if row.UserID == userID && !row.Date.Before(since) {
			out = append(out, row)
		}
	}
	return out, nil
}

type memEventRecorder struct {
	events []entities.LearningAnalytics
}

func (r *memEventRecorder) Record(event entities.LearningAnalytics) {
	r.events = append(r.events, event)
}

func (r *memEventRecorder) Flush() int {
	n := len(r.events)
	r.events = nil
	return n
}

func seedAnalytics(repo *memAnalyticsRepo, userID, metric string, daysAgo int) {
	repo.rows = append(repo.rows, entities.LearningAnalytics{
		ID:     uuid.New().String(),
		UserID: userID,
		Metric: metric,
		Value:  1,
		Date:   time.Now().UTC().AddDate(0, 0, -daysAgo),
	})
}

func TestWindow_FiltersToRequestedDaySpan(t *testing.T) {
	repo := &memAnalyticsRepo{}
	uc := NewAnalyticsUseCase(repo, &memEventRecorder{})

	seedAnalytics(repo, "u1", "study_minutes", 2)
	seedAnalytics(repo, "u1", "study_minutes", 6)
	seedAnalytics(repo, "u1", "study_minutes", 20)

	rows, err := uc.Window("u1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("expected 2 rows inside a 7-day window, got %d", len(rows))
	}
}

func TestWindow_DefaultsToThirtyDays(t *testing.T) {
	repo := &memAnalyticsRepo{}
	uc := NewAnalyticsUseCase(repo, &memEventRecorder{})

	seedAnalytics(repo, "u1", "sessions", 10)
	seedAnalytics(repo, "u1", "sessions", 29)
	seedAnalytics(repo, "u1", "sessions", 40)

	for _, days := range []int{0, -5} {
		rows, err := uc.Window("u1", days)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Errorf("days=%d: expected 2 rows inside the default 30-day window, got %d", days, len(rows))
		}
	}
}

func TestWindow_ScopedToUser(t *testing.T) {
	repo := &memAnalyticsRepo{}
	uc := NewAnalyticsUseCase(repo, &memEventRecorder{})

	seedAnalytics(repo, "u1", "sessions", 1)
	seedAnalytics(repo, "u2", "sessions", 1)

	rows, err := uc.Window("u1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only u1's row, got %d rows", len(rows))
	}
}

func TestRecordEvent_BuffersThroughRecorder(t *testing.T) {
	recorder := &memEventRecorder{}
	uc := NewAnalyticsUseCase(&memAnalyticsRepo{}, recorder)

	if err := uc.RecordEvent("u1", RecordEventInput{Metric: "study_minutes", Value: 25}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recorder.events) != 1 {
		t.Fatalf("expected 1 buffered event, got %d", len(recorder.events))
	}
	if recorder.events[0].UserID != "u1" || recorder.events[0].Metric != "study_minutes" {
		t.Errorf("buffered event has wrong identity: %+v", recorder.events[0])
	}

	if uc.Flush() != 1 {
		t.Error("expected flush to report 1 event")
	}
}

func TestRecordEvent_RequiresMetric(t *testing.T) {
	uc := NewAnalyticsUseCase(&memAnalyticsRepo{}, &memEventRecorder{})

	err := uc.RecordEvent("u1", RecordEventInput{Value: 1})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
