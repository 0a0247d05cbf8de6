package ds

import "time"

// Comment targets exactly one of a question or an answer; the handler
// rejects bodies that set both or neither.
type Comment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreationDate time.Time `gorm:"not null" json:"creation_date"`
	QuestionID   *uint     `json:"question_id,omitempty"`
	AnswerID     *uint     `json:"answer_id,omitempty"`
	DoctorID     uint      `gorm:"not null" json:"doctor_id"`

	Question *Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Answer   *Answer   `gorm:"foreignKey:AnswerID;constraint:OnDelete:CASCADE" json:"-"`
	Doctor   Doctor    `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
}
