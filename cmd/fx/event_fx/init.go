package event_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"scoutinghike/internal/repositories"
	"scoutinghike/internal/services"
	mem "scoutinghike/pkg/memcache"
)

var Module = fx.Provide(
	provideEventService,
	provideEventRepo)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(
	events repositories.EventRepository,
	posts repositories.PostRepository,
	groups repositories.WalkingGroupRepository,
	volunteers repositories.VolunteerRepository,
	assignments repositories.PostVolunteerRepository,
	checkpoints repositories.CheckpointRepository,
	sessions mem.SessionStore,
	logger *zap.Logger,
) services.EventServiceInterface {
	return services.NewEventService(events, posts, groups, volunteers, assignments, checkpoints, sessions, logger)
}
