package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scoutinghike/internal/models/db_models"
)

type PostRepository interface {
	Insert(ctx context.Context, post *db_models.Post) error
	Update(ctx context.Context, post *db_models.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Post, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Post, error)
	NextOrderNumber(ctx context.Context, eventID uuid.UUID) (int, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Insert(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"name":         post.Name,
			"description":  post.Description,
			"location":     post.Location,
			"order_number": post.OrderNumber,
		}).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	var post db_models.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("order_number ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// NextOrderNumber is one past the highest order number used in the event.
func (r *postRepository) NextOrderNumber(ctx context.Context, eventID uuid.UUID) (int, error) {
	var highest *int
	err := r.db.WithContext(ctx).
		Model(&db_models.Post{}).
		Where("event_id = ?", eventID).
		Select("MAX(order_number)").
		Scan(&highest).Error
	if err != nil {
		return 0, err
	}
	if highest == nil {
		return 1, nil
	}
	return *highest + 1, nil
}

func (r *postRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&db_models.Checkpoint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&db_models.PostVolunteer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Post{}, "id = ?", id).Error
	})
}
