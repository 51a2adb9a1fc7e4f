package response_models

import (
	"scoutinghike/internal/models/db_models"
)

type AccountLoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

type AccountResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func NewAccountResponse(u *db_models.User) AccountResponse {
	resp := AccountResponse{
		ID:      u.ID.String(),
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
	if u.Name != nil {
		resp.Name = *u.Name
	}
	return resp
}
