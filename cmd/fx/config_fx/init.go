package config_fx

import (
	"go.uber.org/fx"
	"scoutinghike/internal/infra"
	"scoutinghike/pkg/utils"
)

var Module = fx.Provide(
	infra.LoadConfig,
	provideClock)

func provideClock() utils.Clock {
	return utils.SystemClock{}
}
