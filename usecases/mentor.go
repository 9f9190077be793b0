package usecases

import (
	"context"

	"pathfinder-server/entities"
)

// RoadmapStep is one step of a generated career roadmap.
type RoadmapStep struct {
	Order       int    `json:"order"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ResourceURL string `json:"resource_url,omitempty"`
}

// MentorService is the generative-AI backend used for chat replies,
// roadmap generation and portfolio evaluation.
type MentorService interface {
	ChatReply(ctx context.Context, history []entities.ChatMessage, chatContext string) (string, error)
	GenerateRoadmap(ctx context.Context, targetRole, background string) (raw string, steps []RoadmapStep, err error)
	EvaluateProject(ctx context.Context, project *entities.PortfolioProject) (string, error)
}

// AchievementNotifier pushes achievement events to connected clients.
type AchievementNotifier interface {
	NotifyAchievement(userID string, achievement *entities.Achievement)
}
