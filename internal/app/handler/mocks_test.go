package handler

import (
	"context"
	"mime/multipart"
	"sync/atomic"

	"medconsult/internal/app/ds"
	"medconsult/internal/app/pkg/auth"
	"medconsult/internal/app/repository"
)

// Compile-time check to ensure MockRepository implements repository.Contract
var _ repository.Contract = (*MockRepository)(nil)

// MockRepository is a func-field mock of repository.Contract. Unset getters
// behave as "row absent" (nil, nil); unset creates succeed. Create calls are
// counted so tests can assert nothing was inserted.
type MockRepository struct {
	CreateUserFunc     func(u *ds.User) error
	GetUserByIDFunc    func(id uint) (*ds.User, error)
	GetUserByEmailFunc func(email string) (*ds.User, error)

	CreateDoctorFunc       func(d *ds.Doctor) error
	CreatePatientFunc      func(p *ds.Patient) error
	GetDoctorByIDFunc      func(id uint) (*ds.Doctor, error)
	GetDoctorByUserIDFunc  func(userID uint) (*ds.Doctor, error)
	GetPatientByIDFunc     func(id uint) (*ds.Patient, error)
	GetPatientByUserIDFunc func(userID uint) (*ds.Patient, error)

	CreateDoctorRequestFunc          func(r *ds.DoctorRequest) error
	CreatePatientRequestFunc         func(r *ds.PatientRequest) error
	GetDoctorRequestByIDFunc         func(id uint) (*ds.DoctorRequest, error)
	GetPatientRequestByIDFunc        func(id uint) (*ds.PatientRequest, error)
	GetDoctorRequestByPairFunc       func(doctorID, patientID uint) (*ds.DoctorRequest, error)
	GetPatientRequestByPairFunc      func(doctorID, patientID uint) (*ds.PatientRequest, error)
	UpdateDoctorRequestStatusFunc    func(id uint, status string) error
	UpdatePatientRequestStatusFunc   func(id uint, status string) error
	ListDoctorRequestsByDoctorFunc   func(doctorID uint) ([]ds.DoctorRequest, error)
	ListDoctorRequestsByPatientFunc  func(patientID uint) ([]ds.DoctorRequest, error)
	ListPatientRequestsByDoctorFunc  func(doctorID uint) ([]ds.PatientRequest, error)
	ListPatientRequestsByPatientFunc func(patientID uint) ([]ds.PatientRequest, error)
	CreateDoctorPatientLinkFunc      func(doctorID, patientID uint) error
	GetDoctorPatientLinkFunc         func(doctorID, patientID uint) (*ds.DoctorPatient, error)
	ListPatientsOfDoctorFunc         func(doctorID uint) ([]ds.Patient, error)

	CreateSpecialtyFunc      func(s *ds.Specialty) error
	ListSpecialtiesFunc      func() ([]ds.Specialty, error)
	GetSpecialtyByIDFunc     func(id uint) (*ds.Specialty, error)
	AddDoctorSpecialtyFunc   func(doctorID, specialtyID uint) error
	CreateLanguageModelFunc  func(m *ds.LanguageModel) error
	ListLanguageModelsFunc   func(skip, limit int) ([]ds.LanguageModel, error)
	GetLanguageModelByIDFunc func(id uint) (*ds.LanguageModel, error)

	CreateQuestionFunc         func(q *ds.Question) error
	GetQuestionByIDFunc        func(id uint) (*ds.Question, error)
	ListQuestionsFunc          func(patientID *uint) ([]ds.Question, error)
	SetQuestionAttachmentFunc  func(id uint, key string) error
	CreateAnswerFunc           func(a *ds.Answer) error
	GetAnswerByIDFunc          func(id uint) (*ds.Answer, error)
	ListAnswersByQuestionFunc  func(questionID uint) ([]ds.Answer, error)
	CreateCommentFunc          func(c *ds.Comment) error
	ListCommentsByQuestionFunc func(questionID uint) ([]ds.Comment, error)
	ListCommentsByAnswerFunc   func(answerID uint) ([]ds.Comment, error)

	CreateDoctorRequestCalls     int32
	CreatePatientRequestCalls    int32
	CreateDoctorPatientLinkCalls int32
	CreateDoctorCalls            int32
	CreatePatientCalls           int32
	CreateCommentCalls           int32
	CreateAnswerCalls            int32
}

func (m *MockRepository) CreateUser(u *ds.User) error {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(u)
	}
	return nil
}

func (m *MockRepository) GetUserByID(id uint) (*ds.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(id)
	}
	return nil, nil
}

func (m *MockRepository) GetUserByEmail(email string) (*ds.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(email)
	}
	return nil, nil
}

func (m *MockRepository) CreateDoctor(d *ds.Doctor) error {
	atomic.AddInt32(&m.CreateDoctorCalls, 1)
	if m.CreateDoctorFunc != nil {
		return m.CreateDoctorFunc(d)
	}
	return nil
}

func (m *MockRepository) CreatePatient(p *ds.Patient) error {
	atomic.AddInt32(&m.CreatePatientCalls, 1)
	if m.CreatePatientFunc != nil {
		return m.CreatePatientFunc(p)
	}
	return nil
}

func (m *MockRepository) GetDoctorByID(id uint) (*ds.Doctor, error) {
	if m.GetDoctorByIDFunc != nil {
		return m.GetDoctorByIDFunc(id)
	}
	return nil, nil
}

func (m *MockRepository) GetDoctorByUserID(userID uint) (*ds.Doctor, error) {
	if m.GetDoctorByUserIDFunc != nil {
		return m.GetDoctorByUserIDFunc(userID)
	}
	return nil, nil
}

func (m *MockRepository) GetPatientByID(id uint) (*ds.Patient, error) {
	if m.GetPatientByIDFunc != nil {
		return m.GetPatientByIDFunc(id)
	}
	return nil, nil
}

func (m *MockRepository) GetPatientByUserID(userID uint) (*ds.Patient, error) {
	if m.GetPatientByUserIDFunc != nil {
		return m.GetPatientByUserIDFunc(userID)
	}
	return nil, nil
}

func (m *MockRepository) CreateDoctorRequest(r *ds.DoctorRequest) error {
	atomic.AddInt32(&m.CreateDoctorRequestCalls, 1)
	if m.CreateDoctorRequestFunc != nil {
		return m.CreateDoctorRequestFunc(r)
	}
	return nil
}

func (m *MockRepository) CreatePatientRequest(r *ds.PatientRequest) error {
	atomic.AddInt32(&m.CreatePatientRequestCalls, 1)
	if m.CreatePatientRequestFunc != nil {
		return m.CreatePatientRequestFunc(r)
	}
	return nil
}

func (m *MockRepository) GetDoctorRequestByID(id uint) (*ds.DoctorRequest, error) {
	if m.GetDoctorRequestByIDFunc != nil {
		return m.GetDoctorRequestByIDFunc(id)
	}
	return nil, nil
}

func (m *MockRepository) GetPatientRequestByID(id uint) (*ds.PatientRequest, error) {
	if m.GetPatientRequestByIDFunc != nil {
		return m.GetPatientRequestByIDFunc(id)
	}
	return nil, nil
}

func (m *MockRepository) GetDoctorRequestByPair(doctorID, patientID uint) (*ds.DoctorRequest, error) {
	if m.GetDoctorRequestByPairFunc != nil {
		return m.GetDoctorRequestByPairFunc(doctorID, patientID)
	}
	return nil, nil
}

func (m *MockRepository) GetPatientRequestByPair(doctorID, patientID uint) (*ds.PatientRequest, error) {
	if m.GetPatientRequestByPairFunc != nil {
		return m.GetPatientRequestByPairFunc(doctorID, patientID)
	}
	return nil, nil
}

func (m *MockRepository) UpdateDoctorRequestStatus(id uint, status string) error {
	if m.UpdateDoctorRequestStatusFunc != nil {
		return m.UpdateDoctorRequestStatusFunc(id, status)
	}
	return nil
}

func (m *MockRepository) UpdatePatientRequestStatus(id uint, status string) error {
	if m.UpdatePatientRequestStatusFunc != nil {
		return m.UpdatePatientRequestStatusFunc(id, status)
	}
	return nil
}

func (m *MockRepository) ListDoctorRequestsByDoctor(doctorID uint) ([]ds.DoctorRequest, error) {
	if m.ListDoctorRequestsByDoctorFunc != nil {
		return m.ListDoctorRequestsByDoctorFunc(doctorID)
	}
	return nil, nil
}

func (m *MockRepository) ListDoctorRequestsByPatient(patientID uint) ([]ds.DoctorRequest, error) {
	if m.ListDoctorRequestsByPatientFunc != nil {
		return m.ListDoctorRequestsByPatientFunc(patientID)
	}
	return nil, nil
}

func (m *MockRepository) ListPatientRequestsByDoctor(doctorID uint) ([]ds.PatientRequest, error) {
	if m.ListPatientRequestsByDoctorFunc != nil {
		return m.ListPatientRequestsByDoctorFunc(doctorID)
	}
	return nil, nil
}

func (m *MockRepository) ListPatientRequestsByPatient(patientID uint) ([]ds.PatientRequest, error) {
	if m.ListPatientRequestsByPatientFunc != nil {
		return m.ListPatientRequestsByPatientFunc(patientID)
	}
	return nil, nil
}

func (m *MockRepository) CreateDoctorPatientLink(doctorID, patientID uint) error {
	atomic.AddInt32(&m.CreateDoctorPatientLinkCalls, 1)
	if m.CreateDoctorPatientLinkFunc != nil {
		return m.CreateDoctorPatientLinkFunc(doctorID, patientID)
	}
	return nil
}

func (m *MockRepository) GetDoctorPatientLink(doctorID, patientID uint) (*ds.DoctorPatient, error) {
	if m.GetDoctorPatientLinkFunc != nil {
		return m.GetDoctorPatientLinkFunc(doctorID, patientID)
	}
	return nil, nil
}

func (m *MockRepository) ListPatientsOfDoctor(doctorID uint) ([]ds.Patient, error) {
	if m.ListPatientsOfDoctorFunc != nil {
		return m.ListPatientsOfDoctorFunc(doctorID)
	}
	return nil, nil
}

func (m *MockRepository) CreateSpecialty(s *ds.Specialty) error {
	if m.CreateSpecialtyFunc != nil {
		return m.CreateSpecialtyFunc(s)
	}
	return nil
}

func (m *MockRepository) ListSpecialties() ([]ds.Specialty, error) {
	if m.ListSpecialtiesFunc != nil {
		return m.ListSpecialtiesFunc()
	}
	return nil, nil
}

func (m *MockRepository) GetSpecialtyByID(id uint) (*ds.Specialty, error) {
	if m.GetSpecialtyByIDFunc != nil {
		return m.GetSpecialtyByIDFunc(id)
	}
	return nil, nil
}

func (m *MockRepository) AddDoctorSpecialty(doctorID, specialtyID uint) error {
	if m.AddDoctorSpecialtyFunc != nil {
		return m.AddDoctorSpecialtyFunc(doctorID, specialtyID)
	}
	return nil
}

func (m *MockRepository) CreateLanguageModel(lm *ds.LanguageModel) error {
	if m.CreateLanguageModelFunc != nil {
		return m.CreateLanguageModelFunc(lm)
	}
	return nil
}

func (m *MockRepository) ListLanguageModels(skip, limit int) ([]ds.LanguageModel, error) {
	if m.ListLanguageModelsFunc != nil {
		return m.ListLanguageModelsFunc(skip, limit)
	}
	return nil, nil
}

func (m *MockRepository) GetLanguageModelByID(id uint) (*ds.LanguageModel, error) {
	if m.GetLanguageModelByIDFunc != nil {
		return m.GetLanguageModelByIDFunc(id)
	}
	return nil, nil
}

func (m *MockRepository) CreateQuestion(q *ds.Question) error {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(q)
	}
	return nil
}

func (m *MockRepository) GetQuestionByID(id uint) (*ds.Question, error) {
	if m.GetQuestionByIDFunc != nil {
		return m.GetQuestionByIDFunc(id)
	}
	return nil, nil
}

func (m *MockRepository) ListQuestions(patientID *uint) ([]ds.Question, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(patientID)
	}
	return nil, nil
}

func (m *MockRepository) SetQuestionAttachment(id uint, key string) error {
	if m.SetQuestionAttachmentFunc != nil {
		return m.SetQuestionAttachmentFunc(id, key)
	}
	return nil
}

func (m *MockRepository) CreateAnswer(a *ds.Answer) error {
	atomic.AddInt32(&m.CreateAnswerCalls, 1)
	if m.CreateAnswerFunc != nil {
		return m.CreateAnswerFunc(a)
	}
	return nil
}

func (m *MockRepository) GetAnswerByID(id uint) (*ds.Answer, error) {
	if m.GetAnswerByIDFunc != nil {
		return m.GetAnswerByIDFunc(id)
	}
	return nil, nil
}

func (m *MockRepository) ListAnswersByQuestion(questionID uint) ([]ds.Answer, error) {
	if m.ListAnswersByQuestionFunc != nil {
		return m.ListAnswersByQuestionFunc(questionID)
	}
	return nil, nil
}

func (m *MockRepository) CreateComment(c *ds.Comment) error {
	atomic.AddInt32(&m.CreateCommentCalls, 1)
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(c)
	}
	return nil
}

func (m *MockRepository) ListCommentsByQuestion(questionID uint) ([]ds.Comment, error) {
	if m.ListCommentsByQuestionFunc != nil {
		return m.ListCommentsByQuestionFunc(questionID)
	}
	return nil, nil
}

func (m *MockRepository) ListCommentsByAnswer(answerID uint) ([]ds.Comment, error) {
	if m.ListCommentsByAnswerFunc != nil {
		return m.ListCommentsByAnswerFunc(answerID)
	}
	return nil, nil
}

// stubSessions satisfies SessionStore without Redis.
type stubSessions struct{}

func (stubSessions) Create(ctx context.Context, sessionID string, data auth.SessionData) error {
	return nil
}

func (stubSessions) Delete(ctx context.Context, sessionID string) error { return nil }

// stubFiles satisfies FileStore without MinIO.
type stubFiles struct{}

func (stubFiles) Upload(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (string, string, error) {
	return "stub-key", "http://files.local/stub-key", nil
}

func (stubFiles) PublicURL(key string) string { return "http://files.local/" + key }
