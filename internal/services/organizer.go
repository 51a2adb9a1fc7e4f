package services

import (
	"context"

	"github.com/google/uuid"
	"scoutinghike/internal/models/db_models"
	"scoutinghike/internal/repositories"
	"scoutinghike/pkg/utils"
)

// Organizer is the authenticated account acting on an event.
type Organizer struct {
	ID      uuid.UUID
	IsAdmin bool
}

func NewOrganizer(id uuid.UUID, role string) Organizer {
	return Organizer{ID: id, IsAdmin: role == utils.RoleAdmin}
}

type eventGuard struct {
	events repositories.EventRepository
}

// owned loads the event and checks that org may manage it. Admins may
// manage every event.
func (g eventGuard) owned(ctx context.Context, org Organizer, eventID uuid.UUID) (*db_models.Event, error) {
	event, err := g.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, utils.NewStoreError("find event", err)
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	if event.CreatorID != org.ID && !org.IsAdmin {
		return nil, utils.ErrForbidden
	}
	return event, nil
}
