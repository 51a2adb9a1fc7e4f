package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description *string
	Date        time.Time `gorm:"not null"`
	CreatorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

func (Event) TableName() string { return "events" }
