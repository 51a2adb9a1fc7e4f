package response_models

import "scoutinghike/internal/models/db_models"

type PostResponse struct {
	ID          string  `json:"id"`
	EventID     string  `json:"event_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	OrderNumber int     `json:"order_number"`

	Volunteers []VolunteerResponse `json:"volunteers,omitempty"`
}

type PostDashboardResponse struct {
	Session       VolunteerSessionResponse `json:"session"`
	Post          PostResponse             `json:"post"`
	WalkingGroups []WalkingGroupResponse   `json:"walking_groups"`
	Checkpoints   []CheckpointResponse     `json:"checkpoints"`
}

func NewPostResponse(p *db_models.Post) PostResponse {
	return PostResponse{
		ID:          p.ID.String(),
		EventID:     p.EventID.String(),
		Name:        p.Name,
		Description: p.Description,
		Location:    p.Location,
		OrderNumber: p.OrderNumber,
	}
}
