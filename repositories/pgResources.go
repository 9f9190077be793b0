package repositories

import (
	"pathfinder-server/db"
	"pathfinder-server/entities"
)

type resourcePgRepository struct {
	db db.Database
}

func NewResourcePgRepository(database db.Database) ResourceRepository {
	return &resourcePgRepository{db: database}
}

func (r *resourcePgRepository) Create(resource *entities.Resource) error {
	return r.db.GetDB().Create(resource).Error
}

func (r *resourcePgRepository) GetAll() ([]entities.Resource, error) {
	var resources []entities.Resource
	err := r.db.GetDB().Order("title ASC").Find(&resources).Error
	return resources, err
}
