package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scoutinghike/internal/models/db_models"
)

type CheckpointRepository interface {
	Insert(ctx context.Context, checkpoint *db_models.Checkpoint) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Checkpoint, error)
	FindByGroupAndPost(ctx context.Context, walkingGroupID, postID uuid.UUID) (*db_models.Checkpoint, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]db_models.Checkpoint, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Checkpoint, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type checkpointRepository struct {
	db *gorm.DB
}

func NewCheckpointRepository(db *gorm.DB) CheckpointRepository {
	return &checkpointRepository{db: db}
}

func (r *checkpointRepository) Insert(ctx context.Context, checkpoint *db_models.Checkpoint) error {
	return r.db.WithContext(ctx).Omit("WalkingGroup", "Post").Create(checkpoint).Error
}

func (r *checkpointRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Checkpoint, error) {
	var checkpoint db_models.Checkpoint
	err := r.db.WithContext(ctx).
		Preload("Post").
		First(&checkpoint, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &checkpoint, nil
}

func (r *checkpointRepository) FindByGroupAndPost(ctx context.Context, walkingGroupID, postID uuid.UUID) (*db_models.Checkpoint, error) {
	var checkpoint db_models.Checkpoint
	err := r.db.WithContext(ctx).
		Where("walking_group_id = ? AND post_id = ?", walkingGroupID, postID).
		First(&checkpoint).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &checkpoint, nil
}

func (r *checkpointRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]db_models.Checkpoint, error) {
	var checkpoints []db_models.Checkpoint
	err := r.db.WithContext(ctx).
		Preload("WalkingGroup").
		Preload("Post").
		Where("post_id = ?", postID).
		Order("checked_at DESC").
		Find(&checkpoints).Error
	if err != nil {
		return nil, err
	}
	return checkpoints, nil
}

func (r *checkpointRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Checkpoint, error) {
	var checkpoints []db_models.Checkpoint
	err := r.db.WithContext(ctx).
		Preload("WalkingGroup").
		Preload("Post").
		Where("post_id IN (?)", r.db.Model(&db_models.Post{}).Select("id").Where("event_id = ?", eventID)).
		Order("checked_at DESC").
		Find(&checkpoints).Error
	if err != nil {
		return nil, err
	}
	return checkpoints, nil
}

func (r *checkpointRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Checkpoint{}, "id = ?", id).Error
}
