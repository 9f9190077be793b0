package repositories

import (
	"time"

	"pathfinder-server/entities"
)

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Update(user *entities.User) error
}

type CareerPathRepository interface {
	Create(path *entities.CareerPath) error
	GetByID(id string) (*entities.CareerPath, error)
	GetByUserID(userID string) ([]entities.CareerPath, error)
	Update(path *entities.CareerPath) error
	Delete(id string) error
}

type PathStepRepository interface {
	Create(step *entities.PathStep) error
	GetByID(id string) (*entities.PathStep, error)
	GetByCareerPathID(pathID string) ([]entities.PathStep, error)
	Update(step *entities.PathStep) error
	Delete(id string) error
}

type ConversationRepository interface {
	Create(conv *entities.Conversation) error
	GetByID(id string) (*entities.Conversation, error)
	GetByUserID(userID string) ([]entities.Conversation, error)
	Update(conv *entities.Conversation) error
}

type PortfolioRepository interface {
	Create(project *entities.PortfolioProject) error
	GetByID(id string) (*entities.PortfolioProject, error)
	GetByUserID(userID string) ([]entities.PortfolioProject, error)
	Update(project *entities.PortfolioProject) error
}

type AchievementRepository interface {
	Create(achievement *entities.Achievement) error
	GetByUserID(userID string) ([]entities.Achievement, error)
}

type AnalyticsRepository interface {
	Create(row *entities.LearningAnalytics) error
	CreateBatch(rows []entities.LearningAnalytics) error
	GetByUserIDSince(userID string, since time.Time) ([]entities.LearningAnalytics, error)
}

type ResourceRepository interface {
	Create(resource *entities.Resource) error
	GetAll() ([]entities.Resource, error)
}
