package memcache_fx

import (
	"go.uber.org/fx"
	mem "scoutinghike/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore,
	provideResetTokenStore)

func provideSessionStore() mem.SessionStore {
	return mem.NewVolunteerSessions()
}

func provideResetTokenStore() mem.ResetTokenStore {
	return mem.NewResetTokens()
}
