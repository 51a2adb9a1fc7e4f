package db_models

import "github.com/google/uuid"

// PostVolunteer assigns a volunteer to a post. A volunteer holds at most
// one post per event.
type PostVolunteer struct {
	BaseModel
	EventID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_volunteers_event_volunteer"`
	PostID      uuid.UUID `gorm:"type:uuid;not null;index"`
	VolunteerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_volunteers_event_volunteer"`

	Post      *Post      `gorm:"foreignKey:PostID"`
	Volunteer *Volunteer `gorm:"foreignKey:VolunteerID"`
}

func (PostVolunteer) TableName() string { return "post_volunteers" }
