package repositories

import (
	"time"

	"pathfinder-server/db"
	"pathfinder-server/entities"
)

type careerPathPgRepository struct {
	db db.Database
}

func NewCareerPathPgRepository(database db.Database) CareerPathRepository {
	return &careerPathPgRepository{db: database}
}

func (r *careerPathPgRepository) Create(path *entities.CareerPath) error {
	return r.db.GetDB().Create(path).Error
}

func (r *careerPathPgRepository) GetByID(id string) (*entities.CareerPath, error) {
	var path entities.CareerPath
	err := r.db.GetDB().Where("id = ?", id).First(&path).Error
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (r *careerPathPgRepository) GetByUserID(userID string) ([]entities.CareerPath, error) {
	var paths []entities.CareerPath
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&paths).Error
	return paths, err
}

func (r *careerPathPgRepository) Update(path *entities.CareerPath) error {
	path.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(path).Error
}

func (r *careerPathPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.CareerPath{}).Error
}
