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
	"scoutinghike/pkg/utils"
)

type PostServiceInterface interface {
	Create(ctx context.Context, org Organizer, eventID uuid.UUID, request request_models.PostRequest) (response_models.PostResponse, error)
	List(ctx context.Context, org Organizer, eventID uuid.UUID) ([]response_models.PostResponse, error)
	Update(ctx context.Context, org Organizer, eventID, postID uuid.UUID, request request_models.PostRequest) (response_models.PostResponse, error)
	Delete(ctx context.Context, org Organizer, eventID, postID uuid.UUID) error
}

type PostService struct {
	eventGuard
	posts  repositories.PostRepository
	logger *zap.Logger
}

func NewPostService(events repositories.EventRepository, posts repositories.PostRepository, logger *zap.Logger) PostServiceInterface {
	return &PostService{
		eventGuard: eventGuard{events: events},
		posts:      posts,
		logger:     logger.Named("post"),
	}
}

func (s *PostService) Create(ctx context.Context, org Organizer, eventID uuid.UUID, request request_models.PostRequest) (response_models.PostResponse, error) {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return response_models.PostResponse{}, err
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return response_models.PostResponse{}, utils.ErrInvalidInput
	}

	post := &db_models.Post{
		EventID:     eventID,
		Name:        name,
		Description: request.Description,
		Location:    request.Location,
	}
	if request.OrderNumber != nil {
		post.OrderNumber = *request.OrderNumber
	} else {
		next, err := s.posts.NextOrderNumber(ctx, eventID)
		if err != nil {
			return response_models.PostResponse{}, utils.NewStoreError("next order number", err)
		}
		post.OrderNumber = next
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		s.logger.Error("failed to create post", zap.Error(err))
		return response_models.PostResponse{}, utils.NewStoreError("insert post", err)
	}
	return response_models.NewPostResponse(post), nil
}

func (s *PostService) List(ctx context.Context, org Organizer, eventID uuid.UUID) ([]response_models.PostResponse, error) {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return nil, err
	}

	posts, err := s.posts.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.NewStoreError("list posts", err)
	}

	out := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, response_models.NewPostResponse(&posts[i]))
	}
	return out, nil
}

func (s *PostService) Update(ctx context.Context, org Organizer, eventID, postID uuid.UUID, request request_models.PostRequest) (response_models.PostResponse, error) {
	post, err := s.find(ctx, org, eventID, postID)
	if err != nil {
		return response_models.PostResponse{}, err
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return response_models.PostResponse{}, utils.ErrInvalidInput
	}

	post.Name = name
	post.Description = request.Description
	post.Location = request.Location
	if request.OrderNumber != nil {
		post.OrderNumber = *request.OrderNumber
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return response_models.PostResponse{}, utils.NewStoreError("update post", err)
	}
	return response_models.NewPostResponse(post), nil
}

// Delete removes the post together with its assignments and checkpoints.
func (s *PostService) Delete(ctx context.Context, org Organizer, eventID, postID uuid.UUID) error {
	if _, err := s.find(ctx, org, eventID, postID); err != nil {
		return err
	}
	if err := s.posts.DeleteCascade(ctx, postID); err != nil {
		s.logger.Error("failed to delete post", zap.String("post_id", postID.String()), zap.Error(err))
		return utils.NewStoreError("delete post", err)
	}
	return nil
}

func (s *PostService) find(ctx context.Context, org Organizer, eventID, postID uuid.UUID) (*db_models.Post, error) {
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
