// Package logging builds the application logger. The TUI owns the terminal,
// so log lines only ever go to a rotated file.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sadopc/exlog/internal/config"
)

// Setup returns a logger writing to cfg.File, or discarding everything when
// no file is set. The returned closer releases the file.
func Setup(cfg config.LogConfig) (*logrus.Logger, io.Closer) {
	logger := logrus.New()
	logger.SetLevel(GetLevel(cfg.Level))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if cfg.File == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}
	}

	fileName := cfg.File
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}
	logger.SetOutput(lumberJackLogger)
	return logger, lumberJackLogger
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
