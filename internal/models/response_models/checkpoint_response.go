package response_models

import (
	"time"

	"scoutinghike/internal/models/db_models"
)

type CheckpointResponse struct {
	ID               string    `json:"id"`
	WalkingGroupID   string    `json:"walking_group_id"`
	WalkingGroupName string    `json:"walking_group_name,omitempty"`
	PostID           string    `json:"post_id"`
	PostName         string    `json:"post_name,omitempty"`
	CheckedBy        string    `json:"checked_by"`
	CheckedAt        time.Time `json:"checked_at"`
	Notes            *string   `json:"notes,omitempty"`
}

func NewCheckpointResponse(c *db_models.Checkpoint) CheckpointResponse {
	resp := CheckpointResponse{
		ID:             c.ID.String(),
		WalkingGroupID: c.WalkingGroupID.String(),
		PostID:         c.PostID.String(),
		CheckedBy:      c.CheckedBy.String(),
		CheckedAt:      c.CheckedAt,
		Notes:          c.Notes,
	}
	if c.WalkingGroup != nil {
		resp.WalkingGroupName = c.WalkingGroup.Name
	}
	if c.Post != nil {
		resp.PostName = c.Post.Name
	}
	return resp
}

func NewCheckpointResponses(checkpoints []db_models.Checkpoint) []CheckpointResponse {
	out := make([]CheckpointResponse, 0, len(checkpoints))
	for i := range checkpoints {
		out = append(out, NewCheckpointResponse(&checkpoints[i]))
	}
	return out
}
