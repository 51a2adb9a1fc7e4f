package request_models

import "time"

type WalkingGroupRequest struct {
	Name        string     `json:"name" binding:"required,max=200"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	Members     []string   `json:"members" binding:"omitempty,dive,required"`
}
