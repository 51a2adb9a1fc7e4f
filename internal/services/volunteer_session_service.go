package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scoutinghike/internal/models/db_models"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/models/response_models"
	"scoutinghike/internal/repositories"
	mem "scoutinghike/pkg/memcache"
	"scoutinghike/pkg/utils"
)

type VolunteerSessionServiceInterface interface {
	// Redeem exchanges an access code for a volunteer session. Each code
	// can be redeemed once, before it expires, for an active event.
	Redeem(ctx context.Context, rawCode string) (response_models.RedeemResponse, error)

	// Resolve turns a session token back into the live session.
	Resolve(ctx context.Context, token string) (mem.VolunteerSession, error)

	Logout(ctx context.Context, volunteerID uuid.UUID)

	PostDashboard(ctx context.Context, session mem.VolunteerSession) (response_models.PostDashboardResponse, error)
	RegisterCheckpoint(ctx context.Context, session mem.VolunteerSession, request request_models.VolunteerCheckpointRequest) (response_models.CheckpointResponse, error)
}

type VolunteerSessionService struct {
	events      repositories.EventRepository
	codes       repositories.VolunteerCodeRepository
	volunteers  repositories.VolunteerRepository
	assignments repositories.PostVolunteerRepository
	groups      repositories.WalkingGroupRepository
	checkpoints CheckpointServiceInterface
	sessions    mem.SessionStore
	tokens      *utils.TokenIssuer
	clock       utils.Clock
	ttl         time.Duration
	logger      *zap.Logger
}

func NewVolunteerSessionService(
	events repositories.EventRepository,
	codes repositories.VolunteerCodeRepository,
	volunteers repositories.VolunteerRepository,
	assignments repositories.PostVolunteerRepository,
	groups repositories.WalkingGroupRepository,
	checkpoints CheckpointServiceInterface,
	sessions mem.SessionStore,
	tokens *utils.TokenIssuer,
	clock utils.Clock,
	ttl time.Duration,
	logger *zap.Logger,
) VolunteerSessionServiceInterface {
	return &VolunteerSessionService{
		events:      events,
		codes:       codes,
		volunteers:  volunteers,
		assignments: assignments,
		groups:      groups,
		checkpoints: checkpoints,
		sessions:    sessions,
		tokens:      tokens,
		clock:       clock,
		ttl:         ttl,
		logger:      logger.Named("volunteer_session"),
	}
}

func (s *VolunteerSessionService) Redeem(ctx context.Context, rawCode string) (response_models.RedeemResponse, error) {
	accessCode := utils.NormalizeAccessCode(rawCode)
	if accessCode == "" {
		return response_models.RedeemResponse{}, utils.ErrInvalidCode
	}

	code, err := s.codes.FindByAccessCode(ctx, accessCode)
	if err != nil {
		return response_models.RedeemResponse{}, utils.NewStoreError("find volunteer code", err)
	}
	if code == nil {
		return response_models.RedeemResponse{}, utils.ErrInvalidCode
	}

	now := s.clock.Now()
	// Expiry wins over use so an expired code always reads as expired.
	if code.Expired(now) {
		return response_models.RedeemResponse{}, utils.ErrCodeExpired
	}
	if code.Used {
		return response_models.RedeemResponse{}, utils.ErrCodeAlreadyUsed
	}

	event, err := s.events.FindByID(ctx, code.EventID)
	if err != nil {
		return response_models.RedeemResponse{}, utils.NewStoreError("find event", err)
	}
	if event == nil || !event.IsActive {
		return response_models.RedeemResponse{}, utils.ErrEventNotFoundOrInactive
	}

	volunteer := &db_models.Volunteer{
		Name:           code.VolunteerName,
		EventID:        event.ID,
		LoginTimestamp: now,
	}
	if err := s.codes.Redeem(ctx, code, volunteer, now); err != nil {
		if errors.Is(err, repositories.ErrStaleRow) {
			return response_models.RedeemResponse{}, utils.ErrCodeAlreadyUsed
		}
		s.logger.Error("failed to redeem access code", zap.String("code_id", code.ID.String()), zap.Error(err))
		return response_models.RedeemResponse{}, utils.NewStoreError("redeem volunteer code", err)
	}

	session := mem.VolunteerSession{
		VolunteerID: volunteer.ID,
		Name:        volunteer.Name,
		EventID:     event.ID,
		EventName:   event.Name,
		Timestamp:   now,
	}
	s.sessions.Save(session, s.ttl)

	token, err := s.tokens.CreateVolunteerToken(volunteer.ID, event.ID, volunteer.Name, event.Name, now)
	if err != nil {
		return response_models.RedeemResponse{}, err
	}

	s.logger.Info("access code redeemed",
		zap.String("event_id", event.ID.String()),
		zap.String("volunteer_id", volunteer.ID.String()))

	return response_models.RedeemResponse{
		Token:     token,
		Session:   response_models.NewVolunteerSessionResponse(session),
		Volunteer: response_models.NewVolunteerResponse(volunteer),
		Event:     response_models.NewEventSummary(event),
	}, nil
}

// Resolve validates the token and returns the session. A session missing
// from the store is rebuilt from the volunteers table as long as the
// volunteer still exists.
func (s *VolunteerSessionService) Resolve(ctx context.Context, token string) (mem.VolunteerSession, error) {
	claims, err := s.tokens.ValidateVolunteerToken(token)
	if err != nil {
		return mem.VolunteerSession{}, utils.ErrSessionInvalid
	}

	volunteerID, err := uuid.Parse(claims.VolunteerID)
	if err != nil {
		return mem.VolunteerSession{}, utils.ErrSessionInvalid
	}
	eventID, err := uuid.Parse(claims.EventID)
	if err != nil {
		return mem.VolunteerSession{}, utils.ErrSessionInvalid
	}

	session, ok := s.sessions.Load(volunteerID)
	if !ok {
		volunteer, err := s.volunteers.FindByID(ctx, volunteerID)
		if err != nil {
			return mem.VolunteerSession{}, utils.NewStoreError("find volunteer", err)
		}
		if volunteer == nil || volunteer.EventID != eventID {
			return mem.VolunteerSession{}, utils.ErrSessionInvalid
		}
		session = mem.VolunteerSession{
			VolunteerID: volunteer.ID,
			Name:        volunteer.Name,
			EventID:     volunteer.EventID,
			EventName:   claims.EventName,
			Timestamp:   volunteer.LoginTimestamp,
		}
		s.sessions.Save(session, s.ttl)
	}
	if session.EventID != eventID {
		return mem.VolunteerSession{}, utils.ErrSessionInvalid
	}

	if err := s.volunteers.TouchActivity(ctx, volunteerID, s.clock.Now()); err != nil {
		s.logger.Warn("failed to record volunteer activity", zap.Error(err))
	}
	return session, nil
}

func (s *VolunteerSessionService) Logout(_ context.Context, volunteerID uuid.UUID) {
	s.sessions.Delete(volunteerID)
}

// PostDashboard is what a volunteer sees at their post: the post, the
// groups walking the event and the groups already registered here.
func (s *VolunteerSessionService) PostDashboard(ctx context.Context, session mem.VolunteerSession) (response_models.PostDashboardResponse, error) {
	post, err := s.assignedPost(ctx, session)
	if err != nil {
		return response_models.PostDashboardResponse{}, err
	}

	groups, err := s.groups.ListByEvent(ctx, session.EventID)
	if err != nil {
		return response_models.PostDashboardResponse{}, utils.NewStoreError("list walking groups", err)
	}
	checkpoints, err := s.checkpoints.ListByPost(ctx, post.ID)
	if err != nil {
		return response_models.PostDashboardResponse{}, err
	}

	dashboard := response_models.PostDashboardResponse{
		Session:       response_models.NewVolunteerSessionResponse(session),
		Post:          response_models.NewPostResponse(post),
		WalkingGroups: make([]response_models.WalkingGroupResponse, 0, len(groups)),
		Checkpoints:   checkpoints,
	}
	for i := range groups {
		dashboard.WalkingGroups = append(dashboard.WalkingGroups, response_models.NewWalkingGroupResponse(&groups[i]))
	}
	return dashboard, nil
}

func (s *VolunteerSessionService) RegisterCheckpoint(ctx context.Context, session mem.VolunteerSession, request request_models.VolunteerCheckpointRequest) (response_models.CheckpointResponse, error) {
	post, err := s.assignedPost(ctx, session)
	if err != nil {
		return response_models.CheckpointResponse{}, err
	}
	return s.checkpoints.Register(ctx, request.WalkingGroupID, post.ID, session.VolunteerID, request.Notes)
}

func (s *VolunteerSessionService) assignedPost(ctx context.Context, session mem.VolunteerSession) (*db_models.Post, error) {
	assignment, err := s.assignments.FindByVolunteer(ctx, session.EventID, session.VolunteerID)
	if err != nil {
		return nil, utils.NewStoreError("find assignment", err)
	}
	if assignment == nil || assignment.Post == nil {
		return nil, utils.ErrNotAssigned
	}
	return assignment.Post, nil
}
