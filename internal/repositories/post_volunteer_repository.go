package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scoutinghike/internal/models/db_models"
)

type PostVolunteerRepository interface {
	Insert(ctx context.Context, assignment *db_models.PostVolunteer) error
	FindByVolunteer(ctx context.Context, eventID, volunteerID uuid.UUID) (*db_models.PostVolunteer, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.PostVolunteer, error)
	Delete(ctx context.Context, postID, volunteerID uuid.UUID) (int64, error)
}

type postVolunteerRepository struct {
	db *gorm.DB
}

func NewPostVolunteerRepository(db *gorm.DB) PostVolunteerRepository {
	return &postVolunteerRepository{db: db}
}

func (r *postVolunteerRepository) Insert(ctx context.Context, assignment *db_models.PostVolunteer) error {
	return r.db.WithContext(ctx).Omit("Post", "Volunteer").Create(assignment).Error
}

// FindByVolunteer loads the volunteer's assignment in the event with its post.
func (r *postVolunteerRepository) FindByVolunteer(ctx context.Context, eventID, volunteerID uuid.UUID) (*db_models.PostVolunteer, error) {
	var assignment db_models.PostVolunteer
	err := r.db.WithContext(ctx).
		Preload("Post").
		Where("event_id = ? AND volunteer_id = ?", eventID, volunteerID).
		First(&assignment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &assignment, nil
}

func (r *postVolunteerRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.PostVolunteer, error) {
	var assignments []db_models.PostVolunteer
	err := r.db.WithContext(ctx).
		Preload("Post").
		Preload("Volunteer").
		Where("event_id = ?", eventID).
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *postVolunteerRepository) Delete(ctx context.Context, postID, volunteerID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("post_id = ? AND volunteer_id = ?", postID, volunteerID).
		Delete(&db_models.PostVolunteer{})
	return result.RowsAffected, result.Error
}
