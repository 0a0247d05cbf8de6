package ds

// DoctorPatient is the durable link created after mutual acceptance.
// Composite primary key, so repeating the handshake cannot produce a
// second row for the same pair.
type DoctorPatient struct {
	DoctorID  uint `gorm:"primaryKey" json:"doctor_id"`
	PatientID uint `gorm:"primaryKey" json:"patient_id"`

	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DoctorPatient) TableName() string {
	return "doctor_patient"
}
