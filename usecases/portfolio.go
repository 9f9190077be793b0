package usecases

import (
	"context"
	"fmt"

	"pathfinder-server/entities"
	"pathfinder-server/repositories"
)

type PortfolioUseCase struct {
	ProjectRepo repositories.PortfolioRepository
	Mentor      MentorService
}

func NewPortfolioUseCase(projectRepo repositories.PortfolioRepository, mentor MentorService) *PortfolioUseCase {
	return &PortfolioUseCase{ProjectRepo: projectRepo, Mentor: mentor}
}

// CreateProjectInput carries the portfolio project creation payload.
type CreateProjectInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	RepoURL       string `json:"repo_url"`
	Technologies  string `json:"technologies"`
	ClaimedSkills string `json:"claimed_skills"`
}

func (uc *PortfolioUseCase) Create(userID string, input CreateProjectInput) (*entities.PortfolioProject, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	project := &entities.PortfolioProject{
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		RepoURL:       input.RepoURL,
		Technologies:  input.Technologies,
		ClaimedSkills: input.ClaimedSkills,
	}
	if err := uc.ProjectRepo.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (uc *PortfolioUseCase) List(userID string) ([]entities.PortfolioProject, error) {
	return uc.ProjectRepo.GetByUserID(userID)
}

func (uc *PortfolioUseCase) Get(userID, projectID string) (*entities.PortfolioProject, error) {
	project, err := uc.ProjectRepo.GetByID(projectID)
	if err != nil || project.UserID != userID {
		return nil, ErrNotFound
	}
	return project, nil
}

// UpdateProjectInput carries the mutable project fields.
type UpdateProjectInput struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	RepoURL            string `json:"repo_url"`
	Technologies       string `json:"technologies"`
	ClaimedSkills      string `json:"claimed_skills"`
	VerificationStatus string `json:"verification_status"`
}

func (uc *PortfolioUseCase) Update(userID, projectID string, input UpdateProjectInput) (*entities.PortfolioProject, error) {
	project, err := uc.Get(userID, projectID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		project.Title = input.Title
	}
	if input.Description != "" {
		project.Description = input.Description
	}
	if input.RepoURL != "" {
		project.RepoURL = input.RepoURL
	}
	if input.Technologies != "" {
		project.Technologies = input.Technologies
	}
	if input.ClaimedSkills != "" {
		project.ClaimedSkills = input.ClaimedSkills
	}
	if input.VerificationStatus != "" {
		switch input.VerificationStatus {
		case entities.VerificationPending, entities.VerificationVerified, entities.VerificationRejected:
			project.VerificationStatus = input.VerificationStatus
		default:
			return nil, fmt.Errorf("%w: verification_status must be pending, verified or rejected", ErrValidation)
		}
	}

	if err := uc.ProjectRepo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// Evaluate asks the mentor AI to review the project and stores the result.
// Status moves back to pending so a reviewer looks at the fresh evaluation.
func (uc *PortfolioUseCase) Evaluate(ctx context.Context, userID, projectID string) (*entities.PortfolioProject, error) {
	project, err := uc.Get(userID, projectID)
	if err != nil {
		return nil, err
	}
	if uc.Mentor == nil {
		return nil, fmt.Errorf("mentor AI is not configured")
	}

	evaluation, err := uc.Mentor.EvaluateProject(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("project evaluation failed: %w", err)
	}

	project.Evaluation = evaluation
	project.VerificationStatus = entities.VerificationPending
	if err := uc.ProjectRepo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}
