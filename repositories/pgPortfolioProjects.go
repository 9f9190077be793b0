package repositories

import (
	"time"

	"pathfinder-server/db"
	"pathfinder-server/entities"
)

type portfolioPgRepository struct {
	db db.Database
}

func NewPortfolioPgRepository(database db.Database) PortfolioRepository {
	return &portfolioPgRepository{db: database}
}

func (r *portfolioPgRepository) Create(project *entities.PortfolioProject) error {
	return r.db.GetDB().Create(project).Error
}

func (r *portfolioPgRepository) GetByID(id string) (*entities.PortfolioProject, error) {
	var project entities.PortfolioProject
	err := r.db.GetDB().Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *portfolioPgRepository) GetByUserID(userID string) ([]entities.PortfolioProject, error) {
	var projects []entities.PortfolioProject
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *portfolioPgRepository) Update(project *entities.PortfolioProject) error {
	project.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(project).Error
}
