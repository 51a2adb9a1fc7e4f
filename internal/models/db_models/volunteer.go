package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Volunteer struct {
	BaseModel
	Name           string    `gorm:"not null"`
	EventID        uuid.UUID `gorm:"type:uuid;not null;index"`
	LoginTimestamp time.Time `gorm:"not null"`
	LastActivity   *time.Time
}

func (Volunteer) TableName() string { return "volunteers" }
