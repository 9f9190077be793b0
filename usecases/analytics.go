package usecases

import (
	"fmt"
	"time"

	"pathfinder-server/entities"
	"pathfinder-server/repositories"
)

// DefaultAnalyticsWindowDays is the day window used when the client doesn't
// ask for one.
const DefaultAnalyticsWindowDays = 30

// EventRecorder is the buffering layer analytics events go through before
// they reach the store.
type EventRecorder interface {
	Record(event entities.LearningAnalytics)
	Flush() int
}

type AnalyticsUseCase struct {
	Repo     repositories.AnalyticsRepository
	Recorder EventRecorder
}

func NewAnalyticsUseCase(repo repositories.AnalyticsRepository, recorder EventRecorder) *AnalyticsUseCase {
	return &AnalyticsUseCase{Repo: repo, Recorder: recorder}
}

// RecordEventInput carries one analytics event.
type RecordEventInput struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// RecordEvent buffers an event; it reaches the store on the next flush.
func (uc *AnalyticsUseCase) RecordEvent(userID string, input RecordEventInput) error {
	if input.Metric == "" {
		return fmt.Errorf("%w: metric is required", ErrValidation)
	}
	uc.Recorder.Record(entities.LearningAnalytics{
		UserID: userID,
		Metric: input.Metric,
		Value:  input.Value,
		Date:   time.Now().UTC(),
	})
	return nil
}

// Window returns the user's analytics rows for the last `days` days.
func (uc *AnalyticsUseCase) Window(userID string, days int) ([]entities.LearningAnalytics, error) {
	if days <= 0 {
		days = DefaultAnalyticsWindowDays
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	return uc.Repo.GetByUserIDSince(userID, since)
}

// Flush forces the recorder to persist buffered events now.
func (uc *AnalyticsUseCase) Flush() int {
	return uc.Recorder.Flush()
}
