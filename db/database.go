package db

import "gorm.io/gorm"

// Database abstracts the gorm handle so repositories and tests can swap it.
type Database interface {
	GetDB() *gorm.DB
	Ping() error
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }

// Ping verifies the underlying connection is still alive.
func (g *GormDatabase) Ping() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
