package account_fx

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
	provideAccountService,
	provideUserRepo,
	fx.Annotate(provideOrganizerTokens, fx.ResultTags(`name:"organizer_tokens"`)),
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideOrganizerTokens(cfg *infra.Config, clock utils.Clock) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, clock)
}

type accountParams struct {
	fx.In

	Config   *infra.Config
	UserRepo repositories.UserRepository
	Events   repositories.EventRepository
	Sessions mem.SessionStore
	Resets   mem.ResetTokenStore
	Mailer   services.MailServiceInterface
	Tokens   *utils.TokenIssuer `name:"organizer_tokens"`
	Logger   *zap.Logger
}

func provideAccountService(p accountParams) services.AccountServiceInterface {
	return services.NewAccountService(
		p.UserRepo,
		p.Events,
		p.Sessions,
		p.Resets,
		p.Mailer,
		p.Tokens,
		p.Config.ResetTokenTTL,
		p.Logger,
	)
}
