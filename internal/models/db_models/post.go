package db_models

import "github.com/google/uuid"

// Post is a checkpoint location along the route.
type Post struct {
	BaseModel
	EventID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null"`
	Description *string
	Location    *string
	OrderNumber int `gorm:"not null"`
}

func (Post) TableName() string { return "posts" }
