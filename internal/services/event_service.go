package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scoutinghike/internal/models/db_models"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/models/response_models"
	"scoutinghike/internal/repositories"
	mem "scoutinghike/pkg/memcache"
	"scoutinghike/pkg/utils"
)

type EventServiceInterface interface {
	Create(ctx context.Context, org Organizer, request request_models.EventRequest) (response_models.EventResponse, error)
	List(ctx context.Context, org Organizer) ([]response_models.EventResponse, error)
	Overview(ctx context.Context, org Organizer, eventID uuid.UUID) (response_models.EventOverviewResponse, error)
	Update(ctx context.Context, org Organizer, eventID uuid.UUID, request request_models.EventRequest) (response_models.EventResponse, error)
	SetActive(ctx context.Context, org Organizer, eventID uuid.UUID, active bool) (response_models.EventResponse, error)
	Delete(ctx context.Context, org Organizer, eventID uuid.UUID) error
}

type EventService struct {
	eventGuard
	posts       repositories.PostRepository
	groups      repositories.WalkingGroupRepository
	volunteers  repositories.VolunteerRepository
	assignments repositories.PostVolunteerRepository
	checkpoints repositories.CheckpointRepository
	sessions    mem.SessionStore
	logger      *zap.Logger
}

func NewEventService(
	events repositories.EventRepository,
	posts repositories.PostRepository,
	groups repositories.WalkingGroupRepository,
	volunteers repositories.VolunteerRepository,
	assignments repositories.PostVolunteerRepository,
	checkpoints repositories.CheckpointRepository,
	sessions mem.SessionStore,
	logger *zap.Logger,
) EventServiceInterface {
	return &EventService{
		eventGuard:  eventGuard{events: events},
		posts:       posts,
		groups:      groups,
		volunteers:  volunteers,
		assignments: assignments,
		checkpoints: checkpoints,
		sessions:    sessions,
		logger:      logger.Named("event"),
	}
}

func (s *EventService) Create(ctx context.Context, org Organizer, request request_models.EventRequest) (response_models.EventResponse, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" || request.Date.IsZero() {
		return response_models.EventResponse{}, utils.ErrInvalidInput
	}

	event := &db_models.Event{
		Name:        name,
		Description: request.Description,
		Date:        request.Date.UTC(),
		CreatorID:   org.ID,
		IsActive:    true,
	}
	if err := s.events.Insert(ctx, event); err != nil {
		s.logger.Error("failed to create event", zap.Error(err))
		return response_models.EventResponse{}, utils.NewStoreError("insert event", err)
	}

	s.logger.Info("event created", zap.String("event_id", event.ID.String()))
	return response_models.NewEventResponse(event), nil
}

func (s *EventService) List(ctx context.Context, org Organizer) ([]response_models.EventResponse, error) {
	var (
		events []db_models.Event
		err    error
	)
	if org.IsAdmin {
		events, err = s.events.ListAll(ctx)
	} else {
		events, err = s.events.ListByCreator(ctx, org.ID)
	}
	if err != nil {
		return nil, utils.NewStoreError("list events", err)
	}

	out := make([]response_models.EventResponse, 0, len(events))
	for i := range events {
		out = append(out, response_models.NewEventResponse(&events[i]))
	}
	return out, nil
}

// Overview gathers everything the event detail page shows: posts in route
// order with their volunteers, groups by name, every volunteer with the
// post they hold, and checkpoints newest first.
func (s *EventService) Overview(ctx context.Context, org Organizer, eventID uuid.UUID) (response_models.EventOverviewResponse, error) {
	event, err := s.owned(ctx, org, eventID)
	if err != nil {
		return response_models.EventOverviewResponse{}, err
	}

	posts, err := s.posts.ListByEvent(ctx, eventID)
	if err != nil {
		return response_models.EventOverviewResponse{}, utils.NewStoreError("list posts", err)
	}
	groups, err := s.groups.ListByEvent(ctx, eventID)
	if err != nil {
		return response_models.EventOverviewResponse{}, utils.NewStoreError("list walking groups", err)
	}
	volunteers, err := s.volunteers.ListByEvent(ctx, eventID)
	if err != nil {
		return response_models.EventOverviewResponse{}, utils.NewStoreError("list volunteers", err)
	}
	assignments, err := s.assignments.ListByEvent(ctx, eventID)
	if err != nil {
		return response_models.EventOverviewResponse{}, utils.NewStoreError("list assignments", err)
	}
	checkpoints, err := s.checkpoints.ListByEvent(ctx, eventID)
	if err != nil {
		return response_models.EventOverviewResponse{}, utils.NewStoreError("list checkpoints", err)
	}

	volunteerResponses := volunteersWithPosts(volunteers, assignments)

	byPost := make(map[string][]response_models.VolunteerResponse)
	for _, v := range volunteerResponses {
		if v.PostID != nil {
			byPost[*v.PostID] = append(byPost[*v.PostID], v)
		}
	}

	overview := response_models.EventOverviewResponse{
		Event:         response_models.NewEventResponse(event),
		Posts:         make([]response_models.PostResponse, 0, len(posts)),
		WalkingGroups: make([]response_models.WalkingGroupResponse, 0, len(groups)),
		Volunteers:    volunteerResponses,
		Checkpoints:   response_models.NewCheckpointResponses(checkpoints),
	}
	for i := range posts {
		post := response_models.NewPostResponse(&posts[i])
		post.Volunteers = byPost[post.ID]
		overview.Posts = append(overview.Posts, post)
	}
	for i := range groups {
		overview.WalkingGroups = append(overview.WalkingGroups, response_models.NewWalkingGroupResponse(&groups[i]))
	}
	return overview, nil
}

func (s *EventService) Update(ctx context.Context, org Organizer, eventID uuid.UUID, request request_models.EventRequest) (response_models.EventResponse, error) {
	event, err := s.owned(ctx, org, eventID)
	if err != nil {
		return response_models.EventResponse{}, err
	}

	name := strings.TrimSpace(request.Name)
	if name == "" || request.Date.IsZero() {
		return response_models.EventResponse{}, utils.ErrInvalidInput
	}

	event.Name = name
	event.Description = request.Description
	event.Date = request.Date.UTC()
	if err := s.events.Update(ctx, event); err != nil {
		return response_models.EventResponse{}, utils.NewStoreError("update event", err)
	}
	return response_models.NewEventResponse(event), nil
}

// SetActive toggles whether access codes for the event can still be
// redeemed. Existing volunteer sessions are left alone.
func (s *EventService) SetActive(ctx context.Context, org Organizer, eventID uuid.UUID, active bool) (response_models.EventResponse, error) {
	event, err := s.owned(ctx, org, eventID)
	if err != nil {
		return response_models.EventResponse{}, err
	}

	if err := s.events.SetActive(ctx, eventID, active); err != nil {
		return response_models.EventResponse{}, utils.NewStoreError("set event active", err)
	}
	event.IsActive = active

	s.logger.Info("event active flag changed",
		zap.String("event_id", eventID.String()),
		zap.Bool("active", active))
	return response_models.NewEventResponse(event), nil
}

func (s *EventService) Delete(ctx context.Context, org Organizer, eventID uuid.UUID) error {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return err
	}

	if err := s.events.DeleteCascade(ctx, eventID); err != nil {
		s.logger.Error("failed to delete event", zap.String("event_id", eventID.String()), zap.Error(err))
		return utils.NewStoreError("delete event", err)
	}
	s.sessions.DeleteEvent(eventID)

	s.logger.Info("event deleted", zap.String("event_id", eventID.String()))
	return nil
}

func volunteersWithPosts(volunteers []db_models.Volunteer, assignments []db_models.PostVolunteer) []response_models.VolunteerResponse {
	byVolunteer := make(map[uuid.UUID]*db_models.PostVolunteer, len(assignments))
	for i := range assignments {
		byVolunteer[assignments[i].VolunteerID] = &assignments[i]
	}

	out := make([]response_models.VolunteerResponse, 0, len(volunteers))
	for i := range volunteers {
		resp := response_models.NewVolunteerResponse(&volunteers[i])
		if a, ok := byVolunteer[volunteers[i].ID]; ok {
			postID := a.PostID.String()
			resp.PostID = &postID
			if a.Post != nil {
				resp.PostName = &a.Post.Name
			}
		}
		out = append(out, resp)
	}
	return out
}
