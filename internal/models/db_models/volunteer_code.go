package db_models

import (
	"time"

	"github.com/google/uuid"
)

// VolunteerCode is a single-use access code issued to a named volunteer.
// At most one unused code may exist per (event, volunteer name).
type VolunteerCode struct {
	BaseModel
	EventID       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_volunteer_codes_live_name,where:used = false"`
	AccessCode    string    `gorm:"type:varchar(16);not null;uniqueIndex"`
	VolunteerName string    `gorm:"not null;uniqueIndex:idx_volunteer_codes_live_name,where:used = false"`
	CreatedAt     time.Time `gorm:"not null"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	Used          bool      `gorm:"not null;default:false"`
	UsedAt        *time.Time
	VolunteerID   *uuid.UUID `gorm:"type:uuid"`
}

func (VolunteerCode) TableName() string { return "volunteer_codes" }

// Expired reports whether the code can no longer be redeemed at now.
func (c *VolunteerCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
