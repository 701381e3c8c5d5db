// Package logging configures the process-wide zerolog logger and adapts it
// for the libraries that bring their own logging interfaces.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

// ServiceName is attached to every log line
const ServiceName = "amenitydb"

// Init initializes the global zerolog logger
func Init(level, format string) {
	InitWithWriter(level, format, os.Stdout)
}

// InitWithWriter initializes the global logger writing to w
func InitWithWriter(level, format string, w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.DefaultContextLogger = &log.Logger

	if format == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Str("service", ServiceName).
			Logger()
		return
	}

	log.Logger = zerolog.New(w).
		With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

// gormWriter routes GORM's printf-style output through zerolog
type gormWriter struct {
	logger zerolog.Logger
	level  zerolog.Level
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.logger.WithLevel(w.level).Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// GormLogger returns a GORM logger backed by the global zerolog logger.
// At debug level every statement is logged; otherwise only slow queries and
// errors are, as warnings.
func GormLogger() gormlogger.Interface {
	level, writerLevel := gormlogger.Warn, zerolog.WarnLevel
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		level, writerLevel = gormlogger.Info, zerolog.DebugLevel
	}
	w := gormWriter{logger: log.With().Str("component", "gorm").Logger(), level: writerLevel}
	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
