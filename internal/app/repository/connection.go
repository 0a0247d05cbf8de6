package repository

import (
	"medconsult/internal/app/ds"
)

// The pair unique indexes on both request tables and the composite primary
// key on doctor_patient are the guard against concurrent duplicate inserts;
// the handlers' existence checks only produce friendlier errors.

func (r *Repository) CreateDoctorRequest(req *ds.DoctorRequest) error {
	return r.db.Create(req).Error
}

func (r *Repository) CreatePatientRequest(req *ds.PatientRequest) error {
	return r.db.Create(req).Error
}

func (r *Repository) GetDoctorRequestByID(id uint) (*ds.DoctorRequest, error) {
	var req ds.DoctorRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &req, nil
}

func (r *Repository) GetPatientRequestByID(id uint) (*ds.PatientRequest, error) {
	var req ds.PatientRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &req, nil
}

func (r *Repository) GetDoctorRequestByPair(doctorID, patientID uint) (*ds.DoctorRequest, error) {
	var req ds.DoctorRequest
	err := r.db.Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).First(&req).Error
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &req, nil
}

func (r *Repository) GetPatientRequestByPair(doctorID, patientID uint) (*ds.PatientRequest, error) {
	var req ds.PatientRequest
	err := r.db.Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).First(&req).Error
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &req, nil
}

func (r *Repository) UpdateDoctorRequestStatus(id uint, status string) error {
	return r.db.Model(&ds.DoctorRequest{}).Where("id = ?", id).Update("status", status).Error
}

func (r *Repository) UpdatePatientRequestStatus(id uint, status string) error {
	return r.db.Model(&ds.PatientRequest{}).Where("id = ?", id).Update("status", status).Error
}

func (r *Repository) ListDoctorRequestsByDoctor(doctorID uint) ([]ds.DoctorRequest, error) {
	var list []ds.DoctorRequest
	err := r.db.Where("doctor_id = ?", doctorID).Order("id DESC").Find(&list).Error
	return list, err
}

func (r *Repository) ListDoctorRequestsByPatient(patientID uint) ([]ds.DoctorRequest, error) {
	var list []ds.DoctorRequest
	err := r.db.Where("patient_id = ?", patientID).Order("id DESC").Find(&list).Error
	return list, err
}

func (r *Repository) ListPatientRequestsByDoctor(doctorID uint) ([]ds.PatientRequest, error) {
	var list []ds.PatientRequest
	err := r.db.Where("doctor_id = ?", doctorID).Order("id DESC").Find(&list).Error
	return list, err
}

func (r *Repository) ListPatientRequestsByPatient(patientID uint) ([]ds.PatientRequest, error) {
	var list []ds.PatientRequest
	err := r.db.Where("patient_id = ?", patientID).Order("id DESC").Find(&list).Error
	return list, err
}

func (r *Repository) CreateDoctorPatientLink(doctorID, patientID uint) error {
	return r.db.Create(&ds.DoctorPatient{DoctorID: doctorID, PatientID: patientID}).Error
}

func (r *Repository) GetDoctorPatientLink(doctorID, patientID uint) (*ds.DoctorPatient, error) {
	var link ds.DoctorPatient
	err := r.db.Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).First(&link).Error
	if err != nil {
		return nil, notFoundToNil(err)
	}
	return &link, nil
}

func (r *Repository) ListPatientsOfDoctor(doctorID uint) ([]ds.Patient, error) {
	var patients []ds.Patient
	err := r.db.Table("patients").
		Joins("JOIN doctor_patient ON doctor_patient.patient_id = patients.id").
		Where("doctor_patient.doctor_id = ?", doctorID).
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}
