package request_models

import "time"

type EventRequest struct {
	Name        string    `json:"name" binding:"required,max=200"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
}

type SetEventActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
