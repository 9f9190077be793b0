package repositories

import (
	"pathfinder-server/db"
	"pathfinder-server/entities"
)

type achievementPgRepository struct {
	db db.Database
}

func NewAchievementPgRepository(database db.Database) AchievementRepository {
	return &achievementPgRepository{db: database}
}

func (r *achievementPgRepository) Create(achievement *entities.Achievement) error {
	return r.db.GetDB().Create(achievement).Error
}

func (r *achievementPgRepository) GetByUserID(userID string) ([]entities.Achievement, error) {
	var achievements []entities.Achievement
	err := r.db.GetDB().Where("user_id = ?", userID).Order("earned_at DESC").Find(&achievements).Error
	return achievements, err
}
