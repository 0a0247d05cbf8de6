package ds

import "time"

const (
	UserTypeDoctor  = "Doctor"
	UserTypePatient = "Patient"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password    string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	UserType    string    `gorm:"type:varchar(20);not null" json:"user_type"`
	IsSuperuser bool      `gorm:"type:boolean;default:false" json:"-"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
