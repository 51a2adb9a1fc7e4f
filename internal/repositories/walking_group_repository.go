package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scoutinghike/internal/models/db_models"
)

type WalkingGroupRepository interface {
	Insert(ctx context.Context, group *db_models.WalkingGroup) error
	Update(ctx context.Context, group *db_models.WalkingGroup) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.WalkingGroup, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.WalkingGroup, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type walkingGroupRepository struct {
	db *gorm.DB
}

func NewWalkingGroupRepository(db *gorm.DB) WalkingGroupRepository {
	return &walkingGroupRepository{db: db}
}

func (r *walkingGroupRepository) Insert(ctx context.Context, group *db_models.WalkingGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *walkingGroupRepository) Update(ctx context.Context, group *db_models.WalkingGroup) error {
	return r.db.WithContext(ctx).
		Model(&db_models.WalkingGroup{}).
		Where("id = ?", group.ID).
		Updates(map[string]interface{}{
			"name":        group.Name,
			"description": group.Description,
			"start_time":  group.StartTime,
			"members":     group.Members,
		}).Error
}

func (r *walkingGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.WalkingGroup, error) {
	var group db_models.WalkingGroup
	err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &group, nil
}

func (r *walkingGroupRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.WalkingGroup, error) {
	var groups []db_models.WalkingGroup
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *walkingGroupRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("walking_group_id = ?", id).Delete(&db_models.Checkpoint{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.WalkingGroup{}, "id = ?", id).Error
	})
}
