package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"scoutinghike/internal/infra"
	"scoutinghike/internal/services"
)

var Module = fx.Provide(provideMailService)

func smtpConfig(cfg *infra.Config) services.SMTPConfig {
	return services.SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.SMTPFrom,
		FromName:   "ScoutingHike",
		UseSSL:     cfg.SMTPUseSSL,
		AppName:    "ScoutingHike",
		AppBaseURL: cfg.AppBaseURL,
	}
}

// Without SMTP_HOST the reset links only go to the log.
func provideMailService(cfg *infra.Config, logger *zap.Logger) services.MailServiceInterface {
	if cfg.SMTPHost == "" {
		logger.Warn("SMTP_HOST not set, reset mails are logged instead of sent")
		return services.NewLogMailService(smtpConfig(cfg), logger)
	}
	return services.NewSMTPMailService(smtpConfig(cfg), logger)
}
