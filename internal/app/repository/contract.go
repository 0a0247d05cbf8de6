package repository

import (
	"medconsult/internal/app/ds"
)

// Contract is what the handlers program against; *Repository is the gorm
// implementation. Single-row getters return (nil, nil) when no row matches.
type Contract interface {
	// Users
	CreateUser(u *ds.User) error
	GetUserByID(id uint) (*ds.User, error)
	GetUserByEmail(email string) (*ds.User, error)

	// Profiles
	CreateDoctor(d *ds.Doctor) error
	CreatePatient(p *ds.Patient) error
	GetDoctorByID(id uint) (*ds.Doctor, error)
	GetDoctorByUserID(userID uint) (*ds.Doctor, error)
	GetPatientByID(id uint) (*ds.Patient, error)
	GetPatientByUserID(userID uint) (*ds.Patient, error)

	// Connection workflow
	CreateDoctorRequest(r *ds.DoctorRequest) error
	CreatePatientRequest(r *ds.PatientRequest) error
	GetDoctorRequestByID(id uint) (*ds.DoctorRequest, error)
	GetPatientRequestByID(id uint) (*ds.PatientRequest, error)
	GetDoctorRequestByPair(doctorID, patientID uint) (*ds.DoctorRequest, error)
	GetPatientRequestByPair(doctorID, patientID uint) (*ds.PatientRequest, error)
	UpdateDoctorRequestStatus(id uint, status string) error
	UpdatePatientRequestStatus(id uint, status string) error
	ListDoctorRequestsByDoctor(doctorID uint) ([]ds.DoctorRequest, error)
	ListDoctorRequestsByPatient(patientID uint) ([]ds.DoctorRequest, error)
	ListPatientRequestsByDoctor(doctorID uint) ([]ds.PatientRequest, error)
	ListPatientRequestsByPatient(patientID uint) ([]ds.PatientRequest, error)
	CreateDoctorPatientLink(doctorID, patientID uint) error
	GetDoctorPatientLink(doctorID, patientID uint) (*ds.DoctorPatient, error)
	ListPatientsOfDoctor(doctorID uint) ([]ds.Patient, error)

	// Catalogs
	CreateSpecialty(s *ds.Specialty) error
	ListSpecialties() ([]ds.Specialty, error)
	GetSpecialtyByID(id uint) (*ds.Specialty, error)
	AddDoctorSpecialty(doctorID, specialtyID uint) error
	CreateLanguageModel(m *ds.LanguageModel) error
	ListLanguageModels(skip, limit int) ([]ds.LanguageModel, error)
	GetLanguageModelByID(id uint) (*ds.LanguageModel, error)

	// Consultation thread
	CreateQuestion(q *ds.Question) error
	GetQuestionByID(id uint) (*ds.Question, error)
	ListQuestions(patientID *uint) ([]ds.Question, error)
	SetQuestionAttachment(id uint, key string) error
	CreateAnswer(a *ds.Answer) error
	GetAnswerByID(id uint) (*ds.Answer, error)
	ListAnswersByQuestion(questionID uint) ([]ds.Answer, error)
	CreateComment(c *ds.Comment) error
	ListCommentsByQuestion(questionID uint) ([]ds.Comment, error)
	ListCommentsByAnswer(answerID uint) ([]ds.Comment, error)
}

var _ Contract = (*Repository)(nil)
