package infra

import (
	"fmt"

	"gorm.io/gorm"
	"scoutinghike/internal/models/db_models"
)

// Models lists every table in creation order.
var Models = []interface{}{
	&db_models.User{},
	&db_models.Event{},
	&db_models.Post{},
	&db_models.WalkingGroup{},
	&db_models.Volunteer{},
	&db_models.VolunteerCode{},
	&db_models.PostVolunteer{},
	&db_models.Checkpoint{},
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
