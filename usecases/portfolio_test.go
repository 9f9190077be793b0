package usecases

import (
	"context"
	"errors"
	"testing"

	"pathfinder-server/entities"

	"github.com/google/uuid"
)

type memPortfolioRepo struct {
	projects map[string]*entities.PortfolioProject
}

func newMemPortfolioRepo() *memPortfolioRepo {
	return &memPortfolioRepo{projects: make(map[string]*entities.PortfolioProject)}
}

func (r *memPortfolioRepo) Create(p *entities.PortfolioProject) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.VerificationStatus == "" {
		p.VerificationStatus = entities.VerificationPending
	}
	r.projects[p.ID] = p
	return nil
}

func (r *memPortfolioRepo) GetByID(id string) (*entities.PortfolioProject, error) {
	if p, ok := r.projects[id]; ok {
		return p, nil
	}
	return nil, errRepoNotFound
}

func (r *memPortfolioRepo) GetByUserID(userID string) ([]entities.PortfolioProject, error) {
	var out []entities.PortfolioProject
	for _, p := range r.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPortfolioRepo) Update(p *entities.PortfolioProject) error {
	r.projects[p.ID] = p
	return nil
}

func TestCreateProject_DefaultsToPending(t *testing.T) {
	uc := NewPortfolioUseCase(newMemPortfolioRepo(), nil)

	project, err := uc.Create("u1", CreateProjectInput{Title: "Chat server"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.VerificationStatus != entities.VerificationPending {
		t.Errorf("expected pending status, got %q", project.VerificationStatus)
	}
}

func TestCreateProject_RequiresTitle(t *testing.T) {
	uc := NewPortfolioUseCase(newMemPortfolioRepo(), nil)

	_, err := uc.Create("u1", CreateProjectInput{})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateProject_RejectsUnknownStatus(t *testing.T) {
	uc := NewPortfolioUseCase(newMemPortfolioRepo(), nil)
	project, _ := uc.Create("u1", CreateProjectInput{Title: "Chat server"})

	_, err := uc.Update("u1", project.ID, UpdateProjectInput{VerificationStatus: "approved"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for bad status, got %v", err)
	}

	updated, err := uc.Update("u1", project.ID, UpdateProjectInput{VerificationStatus: entities.VerificationVerified})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.VerificationStatus != entities.VerificationVerified {
		t.Errorf("expected verified status, got %q", updated.VerificationStatus)
	}
}

func TestEvaluate_StoresEvaluationBlob(t *testing.T) {
	mentor := &stubMentor{evaluation: "Strong Go fundamentals; claimed skills look credible."}
	uc := NewPortfolioUseCase(newMemPortfolioRepo(), mentor)
	project, _ := uc.Create("u1", CreateProjectInput{Title: "Chat server", ClaimedSkills: "Go, websockets"})

	evaluated, err := uc.Evaluate(context.Background(), "u1", project.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if evaluated.Evaluation == "" {
		t.Error("expected evaluation blob to be stored")
	}
	if evaluated.VerificationStatus != entities.VerificationPending {
		t.Errorf("expected status reset to pending, got %q", evaluated.VerificationStatus)
	}
}

func TestEvaluate_ForeignProjectIsNotFound(t *testing.T) {
	uc := NewPortfolioUseCase(newMemPortfolioRepo(), &stubMentor{})
	project, _ := uc.Create("owner", CreateProjectInput{Title: "Chat server"})

	_, err := uc.Evaluate(context.Background(), "intruder", project.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
