package walking_group_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"scoutinghike/internal/repositories"
	"scoutinghike/internal/services"
)

var Module = fx.Provide(
	provideWalkingGroupService,
	provideWalkingGroupRepo)

func provideWalkingGroupRepo(db *gorm.DB) repositories.WalkingGroupRepository {
	return repositories.NewWalkingGroupRepository(db)
}

func provideWalkingGroupService(events repositories.EventRepository, groups repositories.WalkingGroupRepository, logger *zap.Logger) services.WalkingGroupServiceInterface {
	return services.NewWalkingGroupService(events, groups, logger)
}
