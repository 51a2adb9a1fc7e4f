package checkpoint_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"scoutinghike/internal/repositories"
	"scoutinghike/internal/services"
	"scoutinghike/pkg/utils"
)

var Module = fx.Provide(
	provideCheckpointService,
	provideCheckpointRepo)

func provideCheckpointRepo(db *gorm.DB) repositories.CheckpointRepository {
	return repositories.NewCheckpointRepository(db)
}

func provideCheckpointService(
	events repositories.EventRepository,
	posts repositories.PostRepository,
	groups repositories.WalkingGroupRepository,
	checkpoints repositories.CheckpointRepository,
	clock utils.Clock,
	logger *zap.Logger,
) services.CheckpointServiceInterface {
	return services.NewCheckpointService(events, posts, groups, checkpoints, clock, logger)
}
