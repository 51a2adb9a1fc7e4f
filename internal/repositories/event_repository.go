package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scoutinghike/internal/models/db_models"
)

type EventRepository interface {
	Insert(ctx context.Context, event *db_models.Event) error
	Update(ctx context.Context, event *db_models.Event) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Event, error)
	ListAll(ctx context.Context) ([]db_models.Event, error)

	// DeleteCascade removes the event and every row that hangs off it.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Insert(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"name":        event.Name,
			"description": event.Description,
			"date":        event.Date,
		}).Error
}

func (r *eventRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Event{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

func (r *eventRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]db_models.Event, error) {
	var events []db_models.Event
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteEvents(tx, []uuid.UUID{id})
	})
}

// deleteEvents removes the selected events child-first. eventIDs is a
// list of ids or a subquery selecting them.
func deleteEvents(tx *gorm.DB, eventIDs interface{}) error {
	posts := tx.Model(&db_models.Post{}).Select("id").Where("event_id IN (?)", eventIDs)
	groups := tx.Model(&db_models.WalkingGroup{}).Select("id").Where("event_id IN (?)", eventIDs)

	if err := tx.Where("post_id IN (?) OR walking_group_id IN (?)", posts, groups).
		Delete(&db_models.Checkpoint{}).Error; err != nil {
		return err
	}

	for _, model := range []interface{}{
		&db_models.PostVolunteer{},
		&db_models.VolunteerCode{},
		&db_models.Volunteer{},
		&db_models.WalkingGroup{},
		&db_models.Post{},
	} {
		if err := tx.Where("event_id IN (?)", eventIDs).Delete(model).Error; err != nil {
			return err
		}
	}

	return tx.Where("id IN (?)", eventIDs).Delete(&db_models.Event{}).Error
}
