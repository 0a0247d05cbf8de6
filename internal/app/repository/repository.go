package repository

import (
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Single-row lookups return (nil, nil) when the row is absent, so callers
// can tell "not found" from a store failure without importing gorm.
func notFoundToNil(err error) error {
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	return err
}
