package response_models

import (
	"time"

	"scoutinghike/internal/models/db_models"
)

type WalkingGroupResponse struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	Members     []string   `json:"members"`
}

func NewWalkingGroupResponse(g *db_models.WalkingGroup) WalkingGroupResponse {
	members := []string(g.Members)
	if members == nil {
		members = []string{}
	}
	return WalkingGroupResponse{
		ID:          g.ID.String(),
		EventID:     g.EventID.String(),
		Name:        g.Name,
		Description: g.Description,
		StartTime:   g.StartTime,
		Members:     members,
	}
}
