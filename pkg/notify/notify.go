package notify

import (
	"context"

	"go.uber.org/zap"
)

type Kind string

const (
	KindNormal      Kind = "normal"
	KindDestructive Kind = "destructive"
)

// Notification is the titled message shown to the user after an action.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        Kind   `json:"kind"`
}

func Normal(title, description string) Notification {
	return Notification{Title: title, Description: description, Kind: KindNormal}
}

func Destructive(title, description string) Notification {
	return Notification{Title: title, Description: description, Kind: KindDestructive}
}

type Sink interface {
	Notify(ctx context.Context, n Notification)
}

type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("notify")}
}

func (s *LogSink) Notify(_ context.Context, n Notification) {
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("description", n.Description),
	}
	if n.Kind == KindDestructive {
		s.logger.Warn("notification", fields...)
		return
	}
	s.logger.Info("notification", fields...)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(ctx context.Context, n Notification)

func (f SinkFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }
