package response_models

import (
	"time"

	"scoutinghike/internal/models/db_models"
	mem "scoutinghike/pkg/memcache"
	"scoutinghike/pkg/utils"
)

type VolunteerCodeResponse struct {
	ID               string     `json:"id"`
	EventID          string     `json:"event_id"`
	AccessCode       string     `json:"access_code"`
	VolunteerName    string     `json:"volunteer_name"`
	CreatedAt        time.Time  `json:"created_at"`
	ExpiresAt        time.Time  `json:"expires_at"`
	Used             bool       `json:"used"`
	UsedAt           *time.Time `json:"used_at,omitempty"`
	VolunteerID      *string    `json:"volunteer_id,omitempty"`
	Expired          bool       `json:"expired"`
	ExpiresInSeconds int64      `json:"expires_in_seconds"`
}

type VolunteerResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	EventID        string     `json:"event_id"`
	LoginTimestamp time.Time  `json:"login_timestamp"`
	LastActivity   *time.Time `json:"last_activity,omitempty"`
	PostID         *string    `json:"post_id,omitempty"`
	PostName       *string    `json:"post_name,omitempty"`
}

type VolunteerSessionResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	EventID   string    `json:"event_id"`
	EventName string    `json:"event_name"`
	Timestamp time.Time `json:"timestamp"`
}

type RedeemResponse struct {
	Token     string                   `json:"token"`
	Session   VolunteerSessionResponse `json:"session"`
	Volunteer VolunteerResponse        `json:"volunteer"`
	Event     EventSummary             `json:"event"`
}

// NewVolunteerCodeResponse annotates the code with its expiry state at now.
func NewVolunteerCodeResponse(c *db_models.VolunteerCode, now time.Time) VolunteerCodeResponse {
	resp := VolunteerCodeResponse{
		ID:            c.ID.String(),
		EventID:       c.EventID.String(),
		AccessCode:    c.AccessCode,
		VolunteerName: c.VolunteerName,
		CreatedAt:     c.CreatedAt,
		ExpiresAt:     c.ExpiresAt,
		Used:          c.Used,
		UsedAt:        c.UsedAt,
		Expired:       c.Expired(now),
	}
	if !c.Used {
		resp.ExpiresInSeconds = utils.SecondsUntil(now, c.ExpiresAt)
	}
	if c.VolunteerID != nil {
		id := c.VolunteerID.String()
		resp.VolunteerID = &id
	}
	return resp
}

func NewVolunteerResponse(v *db_models.Volunteer) VolunteerResponse {
	return VolunteerResponse{
		ID:             v.ID.String(),
		Name:           v.Name,
		EventID:        v.EventID.String(),
		LoginTimestamp: v.LoginTimestamp,
		LastActivity:   v.LastActivity,
	}
}

func NewVolunteerSessionResponse(s mem.VolunteerSession) VolunteerSessionResponse {
	return VolunteerSessionResponse{
		ID:        s.VolunteerID.String(),
		Name:      s.Name,
		EventID:   s.EventID.String(),
		EventName: s.EventName,
		Timestamp: s.Timestamp,
	}
}
