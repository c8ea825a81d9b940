package database

import (
	"context"
	"errors"
	"time"

	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold marks queries worth a warning
const slowQueryThreshold = 200 * time.Millisecond

// GormLogger routes GORM's logging through the application logger so SQL
// traffic shows up in the same structured stream as everything else
type GormLogger struct {
	logger coreport.Logger
	level  gormlogger.LogLevel
}

// NewGormLogger creates a GORM logger bridge at the given application level
func NewGormLogger(logger coreport.Logger, level string) *GormLogger {
	gormLevel := gormlogger.Warn
	switch level {
	case "debug":
		gormLevel = gormlogger.Info
	case "info":
		gormLevel = gormlogger.Warn
	case "error":
		gormLevel = gormlogger.Error
	}

	return &GormLogger{
		logger: logger,
		level:  gormLevel,
	}
}

// LogMode implements gorm logger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &GormLogger{logger: l.logger, level: level}
}

// Info implements gorm logger.Interface
func (l *GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger.Info(msg, map[string]any{"data": data})
	}
}

// Warn implements gorm logger.Interface
func (l *GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger.Warn(msg, map[string]any{"data": data})
	}
}

// Error implements gorm logger.Interface
func (l *GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger.Error(msg, map[string]any{"data": data})
	}
}

// Trace implements gorm logger.Interface
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := map[string]any{
		"elapsed_ms": elapsed.Milliseconds(),
		"rows":       rows,
		"sql":        sql,
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		fields["error"] = err.Error()
		l.logger.Error("Query failed", fields)
	case elapsed > slowQueryThreshold:
		l.logger.Warn("Slow query", fields)
	case l.level >= gormlogger.Info:
		l.logger.Debug("Query executed", fields)
	}
}
