package log

import (
	"go.uber.org/zap"
)

// ZapLogger forwards game events to a structured zap logger while keeping an
// in-memory copy like MemoryLogger. Setting Keep to false drops the copy, which
// batch simulations use to bound memory.
type ZapLogger struct {
	MemoryLogger
	logger *zap.Logger
	keep   bool
}

// NewZapLogger wraps logger. A nil logger falls back to zap.NewNop().
func NewZapLogger(logger *zap.Logger, keep bool) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{logger: logger, keep: keep}
}

func (l *ZapLogger) Log(event GameEvent) {
	if l.keep {
		l.MemoryLogger.Log(event)
	}

	fields := make([]zap.Field, 0, 6+len(event.Context))
	fields = append(fields,
		zap.String("category", event.Type.String()),
		zap.Int("actor", event.Player),
		zap.Int("turn", event.Turn),
	)
	if event.Phase != "" {
		fields = append(fields, zap.String("phase", event.Phase))
	}
	if event.Card != "" {
		fields = append(fields, zap.String("card", event.Card))
	}
	for k, v := range event.Context {
		fields = append(fields, zap.Any(k, v))
	}

	switch event.Type {
	case EventFallback:
		l.logger.Warn(event.Details, fields...)
	case EventGameOver, EventNewTurn:
		l.logger.Info(event.Details, fields...)
	default:
		l.logger.Debug(event.Details, fields...)
	}
}

// With returns a logger whose entries carry the given fields, e.g. the game id.
func (l *ZapLogger) With(fields ...zap.Field) *ZapLogger {
	return &ZapLogger{logger: l.logger.With(fields...), keep: l.keep}
}
