package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Checkpoint records that a walking group passed a post.
type Checkpoint struct {
	BaseModel
	WalkingGroupID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_checkpoints_group_post"`
	PostID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_checkpoints_group_post;index"`
	CheckedBy      uuid.UUID `gorm:"type:uuid;not null"`
	CheckedAt      time.Time `gorm:"not null"`
	Notes          *string

	WalkingGroup *WalkingGroup `gorm:"foreignKey:WalkingGroupID"`
	Post         *Post         `gorm:"foreignKey:PostID"`
}

func (Checkpoint) TableName() string { return "checkpoints" }
