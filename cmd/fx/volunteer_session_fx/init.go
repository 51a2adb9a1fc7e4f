package volunteer_session_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"scoutinghike/internal/infra"
	"scoutinghike/internal/repositories"
	"scoutinghike/internal/services"
	mem "scoutinghike/pkg/memcache"
	"scoutinghike/pkg/middleware"
	"scoutinghike/pkg/utils"
)

var Module = fx.Provide(
	provideVolunteerSessionService,
	provideVolunteerRepo,
	provideSessionResolver,
	fx.Annotate(provideSessionTokens, fx.ResultTags(`name:"session_tokens"`)),
)

func provideVolunteerRepo(db *gorm.DB) repositories.VolunteerRepository {
	return repositories.NewVolunteerRepository(db)
}

func provideSessionTokens(cfg *infra.Config, clock utils.Clock) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.SessionSecret, cfg.SessionTTL, clock)
}

type sessionParams struct {
	fx.In

	Config      *infra.Config
	Events      repositories.EventRepository
	Codes       repositories.VolunteerCodeRepository
	Volunteers  repositories.VolunteerRepository
	Assignments repositories.PostVolunteerRepository
	Groups      repositories.WalkingGroupRepository
	Checkpoints services.CheckpointServiceInterface
	Sessions    mem.SessionStore
	Tokens      *utils.TokenIssuer `name:"session_tokens"`
	Clock       utils.Clock
	Logger      *zap.Logger
}

func provideVolunteerSessionService(p sessionParams) services.VolunteerSessionServiceInterface {
	return services.NewVolunteerSessionService(
		p.Events, p.Codes, p.Volunteers, p.Assignments, p.Groups,
		p.Checkpoints, p.Sessions, p.Tokens, p.Clock, p.Config.SessionTTL, p.Logger)
}

func provideSessionResolver(s services.VolunteerSessionServiceInterface) middleware.SessionResolver {
	return s
}
