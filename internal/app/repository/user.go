package repository

import (
	"medconsult/internal/app/ds"
)

func (r *Repository) CreateUser(u *ds.User) error {
	return r.db.Create(u).Error
}

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var u ds.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &u, nil
}

func (r *Repository) GetUserByEmail(email string) (*ds.User, error) {
	var u ds.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &u, nil
}
