package analytics

import (
	"context"

	"go.uber.org/zap"
)

// LogRecorder writes each event to a zap logger.
type LogRecorder struct {
	logger *zap.Logger
}

// NewLogRecorder returns a recorder logging at info level.
func NewLogRecorder(logger *zap.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

func (l *LogRecorder) Name() string { return "log" }

func (l *LogRecorder) Record(_ context.Context, e Event) error {
	fields := []zap.Field{
		zap.String("event", string(e.Name)),
		zap.Time("at", e.Timestamp),
	}
	if e.SessionID != "" {
		fields = append(fields, zap.String("session_id", e.SessionID))
	}
	if e.ResultType != "" {
		fields = append(fields, zap.String("result_type", e.ResultType))
	}
	l.logger.Info("analytics event", fields...)
	return nil
}
