package volunteer_code_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"scoutinghike/internal/infra"
	"scoutinghike/internal/repositories"
	"scoutinghike/internal/services"
	mem "scoutinghike/pkg/memcache"
	"scoutinghike/pkg/utils"
)

var Module = fx.Provide(
	provideVolunteerCodeService,
	provideVolunteerCodeRepo,
	provideCodeGenerator)

func provideVolunteerCodeRepo(db *gorm.DB) repositories.VolunteerCodeRepository {
	return repositories.NewVolunteerCodeRepository(db)
}

func provideCodeGenerator(cfg *infra.Config) utils.CodeGenerator {
	return utils.NewNanoCodeGenerator(cfg.CodeLength)
}

func provideVolunteerCodeService(
	cfg *infra.Config,
	events repositories.EventRepository,
	codes repositories.VolunteerCodeRepository,
	sessions mem.SessionStore,
	generator utils.CodeGenerator,
	clock utils.Clock,
	logger *zap.Logger,
) services.VolunteerCodeServiceInterface {
	return services.NewVolunteerCodeService(events, codes, sessions, generator, clock, cfg.CodeTTL, logger)
}
