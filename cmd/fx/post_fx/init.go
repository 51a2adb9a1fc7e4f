package post_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"scoutinghike/internal/repositories"
	"scoutinghike/internal/services"
)

var Module = fx.Provide(
	providePostService,
	providePostRepo)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}

func providePostService(events repositories.EventRepository, posts repositories.PostRepository, logger *zap.Logger) services.PostServiceInterface {
	return services.NewPostService(events, posts, logger)
}
