package request_models

import "github.com/google/uuid"

// CheckpointRequest is sent by an organizer for any post of the event.
type CheckpointRequest struct {
	WalkingGroupID uuid.UUID `json:"walking_group_id" binding:"required"`
	PostID         uuid.UUID `json:"post_id" binding:"required"`
	Notes          *string   `json:"notes"`
}

// VolunteerCheckpointRequest is sent by a volunteer; the post is the one
// the volunteer is assigned to.
type VolunteerCheckpointRequest struct {
	WalkingGroupID uuid.UUID `json:"walking_group_id" binding:"required"`
	Notes          *string   `json:"notes"`
}
