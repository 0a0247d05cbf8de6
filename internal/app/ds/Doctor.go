package ds

type Doctor struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex" json:"user_id"`
	Degree string `gorm:"type:varchar(255);not null" json:"degree"`

	User        User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Specialties []Specialty `gorm:"many2many:doctor_specialty" json:"specialties,omitempty"`
}
