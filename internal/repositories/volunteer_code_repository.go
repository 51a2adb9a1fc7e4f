package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"scoutinghike/internal/models/db_models"
)

type VolunteerCodeRepository interface {
	FindByAccessCode(ctx context.Context, accessCode string) (*db_models.VolunteerCode, error)

	// FindLiveByName returns the unused, unexpired code issued for the name.
	FindLiveByName(ctx context.Context, eventID uuid.UUID, name string, now time.Time) (*db_models.VolunteerCode, error)

	// CreateWithSweep drops expired unused codes for the same event and
	// name, then inserts code, in one transaction.
	CreateWithSweep(ctx context.Context, code *db_models.VolunteerCode, now time.Time) error

	DeleteExpiredUnused(ctx context.Context, eventID uuid.UUID, now time.Time) (int64, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.VolunteerCode, error)

	// Redeem inserts the volunteer and marks the code used in one
	// transaction. ErrStaleRow means the code was claimed first.
	Redeem(ctx context.Context, code *db_models.VolunteerCode, volunteer *db_models.Volunteer, now time.Time) error

	// Revoke deletes the code and, when it was redeemed, the volunteer it
	// produced along with that volunteer's post assignment.
	Revoke(ctx context.Context, code *db_models.VolunteerCode) error
}

type volunteerCodeRepository struct {
	db *gorm.DB
}

func NewVolunteerCodeRepository(db *gorm.DB) VolunteerCodeRepository {
	return &volunteerCodeRepository{db: db}
}

func (r *volunteerCodeRepository) FindByAccessCode(ctx context.Context, accessCode string) (*db_models.VolunteerCode, error) {
	var code db_models.VolunteerCode
	err := r.db.WithContext(ctx).First(&code, "access_code = ?", accessCode).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &code, nil
}

func (r *volunteerCodeRepository) FindLiveByName(ctx context.Context, eventID uuid.UUID, name string, now time.Time) (*db_models.VolunteerCode, error) {
	var code db_models.VolunteerCode
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND volunteer_name = ? AND used = ? AND expires_at >= ?", eventID, name, false, now).
		First(&code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &code, nil
}

func (r *volunteerCodeRepository) CreateWithSweep(ctx context.Context, code *db_models.VolunteerCode, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("event_id = ? AND volunteer_name = ? AND used = ? AND expires_at < ?",
			code.EventID, code.VolunteerName, false, now).
			Delete(&db_models.VolunteerCode{}).Error
		if err != nil {
			return err
		}
		return tx.Create(code).Error
	})
}

func (r *volunteerCodeRepository) DeleteExpiredUnused(ctx context.Context, eventID uuid.UUID, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("event_id = ? AND used = ? AND expires_at < ?", eventID, false, now).
		Delete(&db_models.VolunteerCode{})
	return result.RowsAffected, result.Error
}

func (r *volunteerCodeRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.VolunteerCode, error) {
	var codes []db_models.VolunteerCode
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *volunteerCodeRepository) Redeem(ctx context.Context, code *db_models.VolunteerCode, volunteer *db_models.Volunteer, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(volunteer).Error; err != nil {
			return err
		}

		result := tx.Model(&db_models.VolunteerCode{}).
			Where("id = ? AND used = ?", code.ID, false).
			Updates(map[string]interface{}{
				"used":         true,
				"used_at":      now,
				"volunteer_id": volunteer.ID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStaleRow
		}

		code.Used = true
		code.UsedAt = &now
		code.VolunteerID = &volunteer.ID
		return nil
	})
}

func (r *volunteerCodeRepository) Revoke(ctx context.Context, code *db_models.VolunteerCode) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.VolunteerCode{}, "id = ?", code.ID).Error; err != nil {
			return err
		}
		if !code.Used || code.VolunteerID == nil {
			return nil
		}
		if err := tx.Where("volunteer_id = ?", *code.VolunteerID).Delete(&db_models.PostVolunteer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Volunteer{}, "id = ?", *code.VolunteerID).Error
	})
}
