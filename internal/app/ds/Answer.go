package ds

import "time"

type Answer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreationDate time.Time `gorm:"not null" json:"creation_date"`
	QuestionID   uint      `gorm:"not null" json:"question_id"`
	LLMID        uint      `gorm:"column:llm_id;not null" json:"llm_id"`

	Question      Question      `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	LanguageModel LanguageModel `gorm:"foreignKey:LLMID" json:"-"`
}
