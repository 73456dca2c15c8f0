package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormLogger sends gorm output to zerolog. SQL is traced at debug level;
// ErrRecordNotFound is a normal lookup miss and is not reported as an error.
type gormLogger struct{}

func NewGormLogger() logger.Interface { return gormLogger{} }

func (l gormLogger) LogMode(logger.LogLevel) logger.Interface { return l }

func (l gormLogger) Info(_ context.Context, msg string, args ...any) {
	log.Info().Msg(fmt.Sprintf(msg, args...))
}

func (l gormLogger) Warn(_ context.Context, msg string, args ...any) {
	log.Warn().Msg(fmt.Sprintf(msg, args...))
}

func (l gormLogger) Error(_ context.Context, msg string, args ...any) {
	log.Error().Msg(fmt.Sprintf(msg, args...))
}

func (l gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		sql, rows := fc()
		log.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")
		return
	}

	if e := log.Debug(); e.Enabled() {
		sql, rows := fc()
		e.Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
