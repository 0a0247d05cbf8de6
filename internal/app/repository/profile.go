package repository

import (
	"medconsult/internal/app/ds"
)

func (r *Repository) CreateDoctor(d *ds.Doctor) error {
	return r.db.Create(d).Error
}

func (r *Repository) CreatePatient(p *ds.Patient) error {
	return r.db.Create(p).Error
}

func (r *Repository) GetDoctorByID(id uint) (*ds.Doctor, error) {
	var d ds.Doctor
	if err := r.db.Preload("Specialties").First(&d, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &d, nil
}

func (r *Repository) GetDoctorByUserID(userID uint) (*ds.Doctor, error) {
	var d ds.Doctor
	if err := r.db.Where("user_id = ?", userID).First(&d).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &d, nil
}

func (r *Repository) GetPatientByID(id uint) (*ds.Patient, error) {
	var p ds.Patient
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &p, nil
}

func (r *Repository) GetPatientByUserID(userID uint) (*ds.Patient, error) {
	var p ds.Patient
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &p, nil
}
