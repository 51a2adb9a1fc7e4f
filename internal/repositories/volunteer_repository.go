package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scoutinghike/internal/models/db_models"
)

type VolunteerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Volunteer, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Volunteer, error)
	TouchActivity(ctx context.Context, id uuid.UUID, at time.Time) error
}

type volunteerRepository struct {
	db *gorm.DB
}

func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Volunteer, error) {
	var volunteer db_models.Volunteer
	err := r.db.WithContext(ctx).First(&volunteer, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &volunteer, nil
}

func (r *volunteerRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Volunteer, error) {
	var volunteers []db_models.Volunteer
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("name ASC").
		Find(&volunteers).Error
	if err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (r *volunteerRepository) TouchActivity(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Volunteer{}).
		Where("id = ?", id).
		Update("last_activity", at).Error
}
