package ds

// LanguageModel is a registered automated-answer model. Catalog row, no
// workflow.
type LanguageModel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
