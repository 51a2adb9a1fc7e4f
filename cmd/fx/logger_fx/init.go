package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"scoutinghike/internal/infra"
	"scoutinghike/pkg/notify"
)

var Module = fx.Options(
	fx.Provide(provideLogger, provideNotificationSink),
)

func provideLogger(lc fx.Lifecycle, cfg *infra.Config) (*zap.Logger, error) {
	logger, err := infra.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}

func provideNotificationSink(logger *zap.Logger) notify.Sink {
	return notify.NewLogSink(logger)
}
