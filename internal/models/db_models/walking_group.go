package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type WalkingGroup struct {
	BaseModel
	EventID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null"`
	Description *string
	StartTime   *time.Time
	Members     datatypes.JSONSlice[string]
}

func (WalkingGroup) TableName() string { return "walking_groups" }
