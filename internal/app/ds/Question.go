package ds

import "time"

type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	CreationDate  time.Time `gorm:"not null" json:"creation_date"`
	PatientID     uint      `gorm:"not null" json:"patient_id"`
	AttachmentKey string    `gorm:"type:varchar(255)" json:"attachment_key,omitempty"`

	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"-"`
}
