package response_models

import (
	"time"

	"scoutinghike/internal/models/db_models"
)

type EventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	IsActive    bool      `json:"is_active"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventSummary is what a volunteer gets to see of the event.
type EventSummary struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

type EventOverviewResponse struct {
	Event         EventResponse          `json:"event"`
	Posts         []PostResponse         `json:"posts"`
	WalkingGroups []WalkingGroupResponse `json:"walking_groups"`
	Volunteers    []VolunteerResponse    `json:"volunteers"`
	Checkpoints   []CheckpointResponse   `json:"checkpoints"`
}

func NewEventResponse(e *db_models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		IsActive:    e.IsActive,
		CreatorID:   e.CreatorID.String(),
		CreatedAt:   e.CreatedAt,
	}
}

func NewEventSummary(e *db_models.Event) EventSummary {
	return EventSummary{ID: e.ID.String(), Name: e.Name, Date: e.Date}
}
