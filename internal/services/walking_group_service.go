package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"scoutinghike/internal/models/db_models"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/models/response_models"
	"scoutinghike/internal/repositories"
	"scoutinghike/pkg/utils"
)

type WalkingGroupServiceInterface interface {
	Create(ctx context.Context, org Organizer, eventID uuid.UUID, request request_models.WalkingGroupRequest) (response_models.WalkingGroupResponse, error)
	List(ctx context.Context, org Organizer, eventID uuid.UUID) ([]response_models.WalkingGroupResponse, error)
	Update(ctx context.Context, org Organizer, eventID, groupID uuid.UUID, request request_models.WalkingGroupRequest) (response_models.WalkingGroupResponse, error)
	Delete(ctx context.Context, org Organizer, eventID, groupID uuid.UUID) error
}

type WalkingGroupService struct {
	eventGuard
	groups repositories.WalkingGroupRepository
	logger *zap.Logger
}

func NewWalkingGroupService(events repositories.EventRepository, groups repositories.WalkingGroupRepository, logger *zap.Logger) WalkingGroupServiceInterface {
	return &WalkingGroupService{
		eventGuard: eventGuard{events: events},
		groups:     groups,
		logger:     logger.Named("walking_group"),
	}
}

func (s *WalkingGroupService) Create(ctx context.Context, org Organizer, eventID uuid.UUID, request request_models.WalkingGroupRequest) (response_models.WalkingGroupResponse, error) {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return response_models.WalkingGroupResponse{}, err
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return response_models.WalkingGroupResponse{}, utils.ErrInvalidInput
	}

	group := &db_models.WalkingGroup{
		EventID:     eventID,
		Name:        name,
		Description: request.Description,
		StartTime:   request.StartTime,
		Members:     cleanMembers(request.Members),
	}
	if err := s.groups.Insert(ctx, group); err != nil {
		s.logger.Error("failed to create walking group", zap.Error(err))
		return response_models.WalkingGroupResponse{}, utils.NewStoreError("insert walking group", err)
	}
	return response_models.NewWalkingGroupResponse(group), nil
}

func (s *WalkingGroupService) List(ctx context.Context, org Organizer, eventID uuid.UUID) ([]response_models.WalkingGroupResponse, error) {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return nil, err
	}

	groups, err := s.groups.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.NewStoreError("list walking groups", err)
	}

	out := make([]response_models.WalkingGroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, response_models.NewWalkingGroupResponse(&groups[i]))
	}
	return out, nil
}

func (s *WalkingGroupService) Update(ctx context.Context, org Organizer, eventID, groupID uuid.UUID, request request_models.WalkingGroupRequest) (response_models.WalkingGroupResponse, error) {
	group, err := s.find(ctx, org, eventID, groupID)
	if err != nil {
		return response_models.WalkingGroupResponse{}, err
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return response_models.WalkingGroupResponse{}, utils.ErrInvalidInput
	}

	group.Name = name
	group.Description = request.Description
	group.StartTime = request.StartTime
	group.Members = cleanMembers(request.Members)
	if err := s.groups.Update(ctx, group); err != nil {
		return response_models.WalkingGroupResponse{}, utils.NewStoreError("update walking group", err)
	}
	return response_models.NewWalkingGroupResponse(group), nil
}

// Delete removes the group and its checkpoints.
func (s *WalkingGroupService) Delete(ctx context.Context, org Organizer, eventID, groupID uuid.UUID) error {
	if _, err := s.find(ctx, org, eventID, groupID); err != nil {
		return err
	}
	if err := s.groups.DeleteCascade(ctx, groupID); err != nil {
		s.logger.Error("failed to delete walking group", zap.String("group_id", groupID.String()), zap.Error(err))
		return utils.NewStoreError("delete walking group", err)
	}
	return nil
}

func (s *WalkingGroupService) find(ctx context.Context, org Organizer, eventID, groupID uuid.UUID) (*db_models.WalkingGroup, error) {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return nil, err
	}
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, utils.NewStoreError("find walking group", err)
	}
	if group == nil || group.EventID != eventID {
		return nil, utils.ErrWalkingGroupNotFound
	}
	return group, nil
}

func cleanMembers(members []string) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], 0, len(members))
	for _, m := range members {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}
