package notify

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

//go:generate mockgen -source=notify.go -destination=mock/notifier.go -package=mock

// Type is the severity of a notification.
type Type string

const (
	TypeSuccess Type = "success"
	TypeInfo    Type = "info"
	TypeError   Type = "error"
)

// Notification is a user-facing message about a finished operation.
type Notification struct {
	Title   string
	Message string
	Type    Type
	Icon    string
}

// Notifier delivers notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (l *LogNotifier) Notify(_ context.Context, n Notification) error {
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("message", n.Message),
		zap.String("type", string(n.Type)),
	}
	if n.Icon != "" {
		fields = append(fields, zap.String("icon", n.Icon))
	}

	if n.Type == TypeError {
		l.logger.Warn("notification", fields...)
	} else {
		l.logger.Info("notification", fields...)
	}
	return nil
}

// Multi fans a notification out to every notifier and combines their errors.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(ctx context.Context, n Notification) error {
	var err error
	for _, nt := range m {
		err = multierr.Append(err, nt.Notify(ctx, n))
	}
	return err
}
