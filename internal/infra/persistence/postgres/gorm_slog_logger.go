package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pawtrack/config"
	deliverycontext "pawtrack/internal/delivery/context"
	"pawtrack/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultGormSlowThreshold = 200 * time.Millisecond
	// Preloading a page of providers renders IN lists with one id per row.
	maxLoggedSQL = 2048
)

// gormSlogLogger routes GORM output through slog, preferring the request-scoped
// logger stored in the statement context so SQL lines carry the request id.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger:        baseLogger,
		level:         logger.Warn,
		slowThreshold: defaultGormSlowThreshold,
	}
	if cfg != nil {
		if cfg.Env.Debug {
			l.level = logger.Info
		}
		if cfg.Pool.SlowQueryThreshold > 0 {
			l.slowThreshold = cfg.Pool.SlowQueryThreshold
		}
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.emit(ctx, level, "storage message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, slow statements, and in debug mode every statement.
// Missing rows are a normal lookup outcome and cancelled queries are the caller's doing.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		if l.level >= logger.Warn {
			l.emit(ctx, slog.LevelWarn, "storage query abandoned", l.statement(sqlAndRowsFn, elapsed, slog.String("error", err.Error()))...)
		}
	case err != nil:
		if l.level >= logger.Error {
			l.emit(ctx, slog.LevelError, "storage query failed", l.statement(sqlAndRowsFn, elapsed, slog.String("error", err.Error()))...)
		}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.emit(ctx, slog.LevelWarn, "storage query slow", l.statement(sqlAndRowsFn, elapsed, slog.Duration("slowThreshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.emit(ctx, slog.LevelInfo, "storage query", l.statement(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) emit(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	deliverycontext.GetLoggerOrDefault(ctx, l.logger).LogAttrs(ctx, level, msg,
		append([]slog.Attr{slog.String("component", "postgres")}, attrs...)...)
}

func (l *gormSlogLogger) statement(sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) []slog.Attr {
	sql, rows := sqlAndRowsFn()
	if len(sql) > maxLoggedSQL {
		sql = sql[:maxLoggedSQL] + "...(truncated)"
	}

	return append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)
}
