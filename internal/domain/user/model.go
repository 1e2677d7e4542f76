package user

import "time"

type User struct {
	ID         uint      `gorm:"primaryKey"`
	Email      string    `gorm:"uniqueIndex;not null"`
	Forename   string    `gorm:"not null"`
	Surname    string    `gorm:"not null"`
	Department string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// FullName is the display form used wherever an organiser is resolved.
func (u User) FullName() string {
	return u.Forename + " " + u.Surname
}
