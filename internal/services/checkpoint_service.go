package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scoutinghike/internal/models/db_models"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/models/response_models"
	"scoutinghike/internal/repositories"
	"scoutinghike/pkg/utils"
)

type CheckpointServiceInterface interface {
	// Register records that the walking group passed the post. A group is
	// registered at most once per post.
	Register(ctx context.Context, walkingGroupID, postID, checkedBy uuid.UUID, notes *string) (response_models.CheckpointResponse, error)
	RegisterForEvent(ctx context.Context, org Organizer, eventID uuid.UUID, request request_models.CheckpointRequest) (response_models.CheckpointResponse, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]response_models.CheckpointResponse, error)
	ListByEvent(ctx context.Context, org Organizer, eventID uuid.UUID) ([]response_models.CheckpointResponse, error)
	Delete(ctx context.Context, org Organizer, eventID, checkpointID uuid.UUID) error
}

type CheckpointService struct {
	eventGuard
	posts       repositories.PostRepository
	groups      repositories.WalkingGroupRepository
	checkpoints repositories.CheckpointRepository
	clock       utils.Clock
	logger      *zap.Logger
}

func NewCheckpointService(
	events repositories.EventRepository,
	posts repositories.PostRepository,
	groups repositories.WalkingGroupRepository,
	checkpoints repositories.CheckpointRepository,
	clock utils.Clock,
	logger *zap.Logger,
) CheckpointServiceInterface {
	return &CheckpointService{
		eventGuard:  eventGuard{events: events},
		posts:       posts,
		groups:      groups,
		checkpoints: checkpoints,
		clock:       clock,
		logger:      logger.Named("checkpoint"),
	}
}

func (s *CheckpointService) Register(ctx context.Context, walkingGroupID, postID, checkedBy uuid.UUID, notes *string) (response_models.CheckpointResponse, error) {
	group, err := s.groups.FindByID(ctx, walkingGroupID)
	if err != nil {
		return response_models.CheckpointResponse{}, utils.NewStoreError("find walking group", err)
	}
	if group == nil {
		return response_models.CheckpointResponse{}, utils.ErrWalkingGroupNotFound
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return response_models.CheckpointResponse{}, utils.NewStoreError("find post", err)
	}
	if post == nil {
		return response_models.CheckpointResponse{}, utils.ErrPostNotFound
	}
	if group.EventID != post.EventID {
		return response_models.CheckpointResponse{}, utils.ErrInvalidInput
	}

	existing, err := s.checkpoints.FindByGroupAndPost(ctx, walkingGroupID, postID)
	if err != nil {
		return response_models.CheckpointResponse{}, utils.NewStoreError("find checkpoint", err)
	}
	if existing != nil {
		return response_models.CheckpointResponse{}, utils.ErrDuplicateCheckpoint
	}

	checkpoint := &db_models.Checkpoint{
		WalkingGroupID: walkingGroupID,
		PostID:         postID,
		CheckedBy:      checkedBy,
		CheckedAt:      s.clock.Now(),
		Notes:          notes,
	}
	if err := s.checkpoints.Insert(ctx, checkpoint); err != nil {
		if repositories.IsUniqueViolation(err) {
			return response_models.CheckpointResponse{}, utils.ErrDuplicateCheckpoint
		}
		s.logger.Error("failed to register checkpoint", zap.Error(err))
		return response_models.CheckpointResponse{}, utils.NewStoreError("insert checkpoint", err)
	}
	checkpoint.WalkingGroup = group
	checkpoint.Post = post

	s.logger.Info("checkpoint registered",
		zap.String("walking_group", group.Name),
		zap.String("post", post.Name),
		zap.String("checked_by", checkedBy.String()))
	return response_models.NewCheckpointResponse(checkpoint), nil
}

// RegisterForEvent registers a checkpoint on behalf of the organizer.
func (s *CheckpointService) RegisterForEvent(ctx context.Context, org Organizer, eventID uuid.UUID, request request_models.CheckpointRequest) (response_models.CheckpointResponse, error) {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return response_models.CheckpointResponse{}, err
	}

	post, err := s.posts.FindByID(ctx, request.PostID)
	if err != nil {
		return response_models.CheckpointResponse{}, utils.NewStoreError("find post", err)
	}
	if post == nil || post.EventID != eventID {
		return response_models.CheckpointResponse{}, utils.ErrPostNotFound
	}

	return s.Register(ctx, request.WalkingGroupID, request.PostID, org.ID, request.Notes)
}

func (s *CheckpointService) ListByPost(ctx context.Context, postID uuid.UUID) ([]response_models.CheckpointResponse, error) {
	checkpoints, err := s.checkpoints.ListByPost(ctx, postID)
	if err != nil {
		return nil, utils.NewStoreError("list checkpoints", err)
	}
	return response_models.NewCheckpointResponses(checkpoints), nil
}

func (s *CheckpointService) ListByEvent(ctx context.Context, org Organizer, eventID uuid.UUID) ([]response_models.CheckpointResponse, error) {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return nil, err
	}

	checkpoints, err := s.checkpoints.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.NewStoreError("list checkpoints", err)
	}
	return response_models.NewCheckpointResponses(checkpoints), nil
}

func (s *CheckpointService) Delete(ctx context.Context, org Organizer, eventID, checkpointID uuid.UUID) error {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return err
	}

	checkpoint, err := s.checkpoints.FindByID(ctx, checkpointID)
	if err != nil {
		return utils.NewStoreError("find checkpoint", err)
	}
	if checkpoint == nil || checkpoint.Post == nil || checkpoint.Post.EventID != eventID {
		return utils.ErrCheckpointNotFound
	}

	if err := s.checkpoints.Delete(ctx, checkpointID); err != nil {
		return utils.NewStoreError("delete checkpoint", err)
	}
	s.logger.Info("checkpoint deleted", zap.String("checkpoint_id", checkpointID.String()))
	return nil
}
