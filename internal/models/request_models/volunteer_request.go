package request_models

import "github.com/google/uuid"

type GenerateCodeRequest struct {
	VolunteerName string `json:"volunteer_name" binding:"required,max=100"`
}

type RedeemCodeRequest struct {
	AccessCode string `json:"access_code" binding:"required"`
}

type AssignVolunteerRequest struct {
	VolunteerID uuid.UUID `json:"volunteer_id" binding:"required"`
}
