package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scoutinghike/internal/models/db_models"
	"scoutinghike/internal/models/response_models"
	"scoutinghike/internal/repositories"
	"scoutinghike/pkg/utils"
)

type AssignmentServiceInterface interface {
	Assign(ctx context.Context, org Organizer, eventID, postID, volunteerID uuid.UUID) (response_models.VolunteerResponse, error)
	Unassign(ctx context.Context, org Organizer, eventID, postID, volunteerID uuid.UUID) error
	ListVolunteers(ctx context.Context, org Organizer, eventID uuid.UUID) ([]response_models.VolunteerResponse, error)
}

type AssignmentService struct {
	eventGuard
	posts       repositories.PostRepository
	volunteers  repositories.VolunteerRepository
	assignments repositories.PostVolunteerRepository
	logger      *zap.Logger
}

func NewAssignmentService(
	events repositories.EventRepository,
	posts repositories.PostRepository,
	volunteers repositories.VolunteerRepository,
	assignments repositories.PostVolunteerRepository,
	logger *zap.Logger,
) AssignmentServiceInterface {
	return &AssignmentService{
		eventGuard:  eventGuard{events: events},
		posts:       posts,
		volunteers:  volunteers,
		assignments: assignments,
		logger:      logger.Named("assignment"),
	}
}

// Assign puts the volunteer on the post. A volunteer holds one post per
// event; moving them means unassigning first.
func (s *AssignmentService) Assign(ctx context.Context, org Organizer, eventID, postID, volunteerID uuid.UUID) (response_models.VolunteerResponse, error) {
	post, err := s.postInEvent(ctx, org, eventID, postID)
	if err != nil {
		return response_models.VolunteerResponse{}, err
	}

	volunteer, err := s.volunteers.FindByID(ctx, volunteerID)
	if err != nil {
		return response_models.VolunteerResponse{}, utils.NewStoreError("find volunteer", err)
	}
	if volunteer == nil || volunteer.EventID != eventID {
		return response_models.VolunteerResponse{}, utils.ErrVolunteerNotFound
	}

	existing, err := s.assignments.FindByVolunteer(ctx, eventID, volunteerID)
	if err != nil {
		return response_models.VolunteerResponse{}, utils.NewStoreError("find assignment", err)
	}
	if existing != nil {
		return response_models.VolunteerResponse{}, utils.ErrAlreadyAssigned
	}

	assignment := &db_models.PostVolunteer{
		EventID:     eventID,
		PostID:      postID,
		VolunteerID: volunteerID,
	}
	if err := s.assignments.Insert(ctx, assignment); err != nil {
		if repositories.IsUniqueViolation(err) {
			return response_models.VolunteerResponse{}, utils.ErrAlreadyAssigned
		}
		return response_models.VolunteerResponse{}, utils.NewStoreError("insert assignment", err)
	}

	s.logger.Info("volunteer assigned",
		zap.String("volunteer_id", volunteerID.String()),
		zap.String("post_id", postID.String()))

	resp := response_models.NewVolunteerResponse(volunteer)
	id := post.ID.String()
	resp.PostID = &id
	resp.PostName = &post.Name
	return resp, nil
}

func (s *AssignmentService) Unassign(ctx context.Context, org Organizer, eventID, postID, volunteerID uuid.UUID) error {
	if _, err := s.postInEvent(ctx, org, eventID, postID); err != nil {
		return err
	}

	removed, err := s.assignments.Delete(ctx, postID, volunteerID)
	if err != nil {
		return utils.NewStoreError("delete assignment", err)
	}
	if removed == 0 {
		return utils.ErrNotAssigned
	}
	return nil
}

func (s *AssignmentService) ListVolunteers(ctx context.Context, org Organizer, eventID uuid.UUID) ([]response_models.VolunteerResponse, error) {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return nil, err
	}

	volunteers, err := s.volunteers.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.NewStoreError("list volunteers", err)
	}
	assignments, err := s.assignments.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.NewStoreError("list assignments", err)
	}
	return volunteersWithPosts(volunteers, assignments), nil
}

func (s *AssignmentService) postInEvent(ctx context.Context, org Organizer, eventID, postID uuid.UUID) (*db_models.Post, error) {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return nil, err
	}
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, utils.NewStoreError("find post", err)
	}
	if post == nil || post.EventID != eventID {
		return nil, utils.ErrPostNotFound
	}
	return post, nil
}
