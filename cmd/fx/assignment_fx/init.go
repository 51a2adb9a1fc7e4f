package assignment_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"scoutinghike/internal/repositories"
	"scoutinghike/internal/services"
)

var Module = fx.Provide(
	provideAssignmentService,
	providePostVolunteerRepo)

func providePostVolunteerRepo(db *gorm.DB) repositories.PostVolunteerRepository {
	return repositories.NewPostVolunteerRepository(db)
}

func provideAssignmentService(
	events repositories.EventRepository,
	posts repositories.PostRepository,
	volunteers repositories.VolunteerRepository,
	assignments repositories.PostVolunteerRepository,
	logger *zap.Logger,
) services.AssignmentServiceInterface {
	return services.NewAssignmentService(events, posts, volunteers, assignments, logger)
}
