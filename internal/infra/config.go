package infra

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string        `validate:"required,numeric"`
	PostgresURL   string        `validate:"required"`
	JWTSecret     string        `validate:"required,min=16"`
	SessionSecret string        `validate:"required,min=16"`
	TokenTTL      time.Duration `validate:"gt=0"`
	SessionTTL    time.Duration `validate:"gt=0"`
	CodeTTL       time.Duration `validate:"gt=0"`
	CodeLength    int           `validate:"gte=4,lte=12"`
	GinMode       string        `validate:"oneof=debug release test"`
	LogLevel      string        `validate:"oneof=debug info warn error"`

	// Password reset mail. With SMTPHost empty reset links are only logged.
	SMTPHost      string
	SMTPPort      int `validate:"gt=0"`
	SMTPUsername  string
	SMTPPassword  string
	SMTPFrom      string `validate:"required_with=SMTPHost"`
	SMTPUseSSL    bool
	AppBaseURL    string        `validate:"required,url"`
	ResetTokenTTL time.Duration `validate:"gt=0"`
}

// LoadConfig reads the process environment, after loading .env when one is
// present in the working directory.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return LoadConfigFrom(os.LookupEnv)
}

func LoadConfigFrom(lookup func(string) (string, bool)) (*Config, error) {
	env := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:        env("PORT", "8080"),
		PostgresURL: env("POSTGRES_URL", ""),
		JWTSecret:   env("JWT_SECRET", ""),
		GinMode:     env("GIN_MODE", "release"),
		LogLevel:    env("LOG_LEVEL", "info"),

		SMTPHost:     env("SMTP_HOST", ""),
		SMTPUsername: env("SMTP_USERNAME", ""),
		SMTPPassword: env("SMTP_PASSWORD", ""),
		SMTPFrom:     env("SMTP_FROM", ""),
		AppBaseURL:   env("APP_BASE_URL", "http://localhost:3000"),
	}
	cfg.SessionSecret = env("SESSION_SECRET", cfg.JWTSecret)

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(env("TOKEN_TTL", "1h")); err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(env("SESSION_TTL", "12h")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.CodeTTL, err = time.ParseDuration(env("CODE_TTL", "1h")); err != nil {
		return nil, fmt.Errorf("invalid CODE_TTL: %w", err)
	}
	if cfg.CodeLength, err = strconv.Atoi(env("CODE_LENGTH", "5")); err != nil {
		return nil, fmt.Errorf("invalid CODE_LENGTH: %w", err)
	}
	if cfg.ResetTokenTTL, err = time.ParseDuration(env("RESET_TOKEN_TTL", "30m")); err != nil {
		return nil, fmt.Errorf("invalid RESET_TOKEN_TTL: %w", err)
	}
	if cfg.SMTPPort, err = strconv.Atoi(env("SMTP_PORT", "587")); err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	if cfg.SMTPUseSSL, err = strconv.ParseBool(env("SMTP_USE_SSL", "false")); err != nil {
		return nil, fmt.Errorf("invalid SMTP_USE_SSL: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
