package repository

import (
	"medconsult/internal/app/ds"
)

func (r *Repository) CreateSpecialty(s *ds.Specialty) error {
	return r.db.Create(s).Error
}

func (r *Repository) ListSpecialties() ([]ds.Specialty, error) {
	var list []ds.Specialty
	err := r.db.Order("name").Find(&list).Error
	return list, err
}

func (r *Repository) GetSpecialtyByID(id uint) (*ds.Specialty, error) {
	var s ds.Specialty
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &s, nil
}

func (r *Repository) AddDoctorSpecialty(doctorID, specialtyID uint) error {
	return r.db.Model(&ds.Doctor{ID: doctorID}).
		Association("Specialties").
		Append(&ds.Specialty{ID: specialtyID})
}

func (r *Repository) CreateLanguageModel(m *ds.LanguageModel) error {
	return r.db.Create(m).Error
}

func (r *Repository) ListLanguageModels(skip, limit int) ([]ds.LanguageModel, error) {
	var list []ds.LanguageModel
	err := r.db.Offset(skip).Limit(limit).Order("id").Find(&list).Error
	return list, err
}

func (r *Repository) GetLanguageModelByID(id uint) (*ds.LanguageModel, error) {
	var m ds.LanguageModel
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &m, nil
}
