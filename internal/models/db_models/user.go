package db_models

import "time"

// User is an organizer account.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	Name         *string
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

func (User) TableName() string { return "users" }
