package usecases

import (
	"context"
	"fmt"
	"log"
	"time"

	"pathfinder-server/entities"
	"pathfinder-server/repositories"
)

type CareerUseCase struct {
	PathRepo        repositories.CareerPathRepository
	StepRepo        repositories.PathStepRepository
	AchievementRepo repositories.AchievementRepository
	Mentor          MentorService
	Notifier        AchievementNotifier
}

func NewCareerUseCase(
	pathRepo repositories.CareerPathRepository,
	stepRepo repositories.PathStepRepository,
	achievementRepo repositories.AchievementRepository,
	mentor MentorService,
	notifier AchievementNotifier,
) *CareerUseCase {
	return &CareerUseCase{
		PathRepo:        pathRepo,
		StepRepo:        stepRepo,
		AchievementRepo: achievementRepo,
		Mentor:          mentor,
		Notifier:        notifier,
	}
}

// CreatePathInput carries the career path creation payload.
type CreatePathInput struct {
	Title           string `json:"title"`
	TargetRole      string `json:"target_role"`
	Background      string `json:"background"`
	GenerateRoadmap bool   `json:"generate_roadmap"`
}

// CreatePath creates a career path, optionally asking the mentor AI for a
// roadmap. Parsed roadmap steps become PathStep rows; the raw blob is kept
// on the path either way.
func (uc *CareerUseCase) CreatePath(ctx context.Context, userID string, input CreatePathInput) (*entities.CareerPath, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.TargetRole == "" {
		return nil, fmt.Errorf("%w: target_role is required", ErrValidation)
	}

	path := &entities.CareerPath{
		UserID:     userID,
		Title:      input.Title,
		TargetRole: input.TargetRole,
		IsActive:   true,
	}

	var steps []RoadmapStep
	if input.GenerateRoadmap && uc.Mentor != nil {
		raw, parsed, err := uc.Mentor.GenerateRoadmap(ctx, input.TargetRole, input.Background)
		if err != nil {
			// A path without a roadmap is still useful; log and continue
			log.Printf("roadmap generation failed for user %s: %v", userID, err)
		} else {
			path.Roadmap = raw
			steps = parsed
		}
	}

	if err := uc.PathRepo.Create(path); err != nil {
		return nil, err
	}

	for _, s := range steps {
		step := &entities.PathStep{
			CareerPathID: path.ID,
			StepOrder:    s.Order,
			Title:        s.Title,
			Description:  s.Description,
			ResourceURL:  s.ResourceURL,
		}
		if err := uc.StepRepo.Create(step); err != nil {
			log.Printf("failed to persist roadmap step %d for path %s: %v", s.Order, path.ID, err)
		}
	}

	return path, nil
}

// GetPath returns a path owned by userID.
func (uc *CareerUseCase) GetPath(userID, pathID string) (*entities.CareerPath, error) {
	path, err := uc.PathRepo.GetByID(pathID)
	if err != nil || path.UserID != userID {
		return nil, ErrNotFound
	}
	return path, nil
}

// ListPaths returns all paths for a user.
func (uc *CareerUseCase) ListPaths(userID string) ([]entities.CareerPath, error) {
	return uc.PathRepo.GetByUserID(userID)
}

// UpdatePathInput carries the mutable career path fields.
type UpdatePathInput struct {
	Title    string `json:"title"`
	IsActive *bool  `json:"is_active"`
}

// UpdatePath patches the provided fields on a path owned by userID.
func (uc *CareerUseCase) UpdatePath(userID, pathID string, input UpdatePathInput) (*entities.CareerPath, error) {
	path, err := uc.GetPath(userID, pathID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		path.Title = input.Title
	}
	if input.IsActive != nil {
		path.IsActive = *input.IsActive
	}

	if err := uc.PathRepo.Update(path); err != nil {
		return nil, err
	}
	return path, nil
}

// CreateStepInput carries the path step creation payload.
type CreateStepInput struct {
	StepOrder   int    `json:"step_order"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ResourceURL string `json:"resource_url"`
}

// CreateStep appends a step to a path owned by userID. The parent path must
// exist.
func (uc *CareerUseCase) CreateStep(userID, pathID string, input CreateStepInput) (*entities.PathStep, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if _, err := uc.GetPath(userID, pathID); err != nil {
		return nil, err
	}

	step := &entities.PathStep{
		CareerPathID: pathID,
		StepOrder:    input.StepOrder,
		Title:        input.Title,
		Description:  input.Description,
		ResourceURL:  input.ResourceURL,
	}
	if err := uc.StepRepo.Create(step); err != nil {
		return nil, err
	}
	return step, nil
}

// ListSteps returns the ordered steps of a path owned by userID.
func (uc *CareerUseCase) ListSteps(userID, pathID string) ([]entities.PathStep, error) {
	if _, err := uc.GetPath(userID, pathID); err != nil {
		return nil, err
	}
	return uc.StepRepo.GetByCareerPathID(pathID)
}

// UpdateStepInput carries the mutable step fields.
type UpdateStepInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ResourceURL string `json:"resource_url"`
	Completed   *bool  `json:"completed"`
}

// UpdateStep patches a step owned (through its path) by userID. Marking a
// step complete for the first time records the completion timestamp and
// creates exactly one achievement for the user.
func (uc *CareerUseCase) UpdateStep(userID, stepID string, input UpdateStepInput) (*entities.PathStep, error) {
	step, err := uc.StepRepo.GetByID(stepID)
	if err != nil {
		return nil, ErrNotFound
	}
	path, err := uc.PathRepo.GetByID(step.CareerPathID)
	if err != nil || path.UserID != userID {
		return nil, ErrNotFound
	}

	if input.Title != "" {
		step.Title = input.Title
	}
	if input.Description != "" {
		step.Description = input.Description
	}
	if input.ResourceURL != "" {
		step.ResourceURL = input.ResourceURL
	}

	justCompleted := input.Completed != nil && *input.Completed && !step.Completed
	if input.Completed != nil {
		step.Completed = *input.Completed
		if justCompleted {
			step.CompletedAt = time.Now().Format(time.RFC3339)
		} else if !*input.Completed {
			step.CompletedAt = ""
		}
	}

	if err := uc.StepRepo.Update(step); err != nil {
		return nil, err
	}

	if justCompleted {
		achievement := &entities.Achievement{
			UserID:      userID,
			Type:        "step_completed",
			Title:       fmt.Sprintf("Completed: %s", step.Title),
			Description: fmt.Sprintf("Finished step %d of %s", step.StepOrder, path.Title),
		}
		if err := uc.AchievementRepo.Create(achievement); err != nil {
			log.Printf("failed to create achievement for step %s: %v", step.ID, err)
		} else if uc.Notifier != nil {
			uc.Notifier.NotifyAchievement(userID, achievement)
		}
	}

	return step, nil
}

// ListAchievements returns a user's achievements, newest first.
func (uc *CareerUseCase) ListAchievements(userID string) ([]entities.Achievement, error) {
	return uc.AchievementRepo.GetByUserID(userID)
}
