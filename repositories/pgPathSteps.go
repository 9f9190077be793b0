package repositories

import (
	"time"

	"pathfinder-server/db"
	"pathfinder-server/entities"
)

type pathStepPgRepository struct {
	db db.Database
}

func NewPathStepPgRepository(database db.Database) PathStepRepository {
	return &pathStepPgRepository{db: database}
}

func (r *pathStepPgRepository) Create(step *entities.PathStep) error {
	return r.db.GetDB().Create(step).Error
}

func (r *pathStepPgRepository) GetByID(id string) (*entities.PathStep, error) {
	var step entities.PathStep
	err := r.db.GetDB().Where("id = ?", id).First(&step).Error
	if err != nil {
		return nil, err
	}
	return &step, nil
}

func (r *pathStepPgRepository) GetByCareerPathID(pathID string) ([]entities.PathStep, error) {
	var steps []entities.PathStep
	err := r.db.GetDB().Where("career_path_id = ?", pathID).Order("step_order ASC").Find(&steps).Error
	return steps, err
}

func (r *pathStepPgRepository) Update(step *entities.PathStep) error {
	step.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(step).Error
}

func (r *pathStepPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.PathStep{}).Error
}
