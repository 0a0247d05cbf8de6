package ds

const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// DoctorRequest is a doctor-initiated proposal to connect with a patient.
// The pair index keeps at most one row per (doctor, patient); rejected
// requests are reset to Pending on resubmission instead of inserting a
// second row.
type DoctorRequest struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	DoctorID  uint   `gorm:"not null;uniqueIndex:idx_doctor_request_pair" json:"doctor_id"`
	PatientID uint   `gorm:"not null;uniqueIndex:idx_doctor_request_pair" json:"patient_id"`
	Status    string `gorm:"type:varchar(20);not null;default:Pending" json:"status"`

	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
}

// PatientRequest is the patient-initiated mirror of DoctorRequest.
type PatientRequest struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	DoctorID  uint   `gorm:"not null;uniqueIndex:idx_patient_request_pair" json:"doctor_id"`
	PatientID uint   `gorm:"not null;uniqueIndex:idx_patient_request_pair" json:"patient_id"`
	Status    string `gorm:"type:varchar(20);not null;default:Pending" json:"status"`

	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
}
