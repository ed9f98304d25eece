// Package log writes structured entries to a daily file under where.Logs.
// Every call is a no-op until Setup runs with logs.write on.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is a set of structured key-value pairs attached to an entry.
type Fields = logrus.Fields

var (
	enabled bool
	logger  = newDiscard()
)

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Enabled reports whether entries reach the log file.
func Enabled() bool {
	return enabled
}

// Setup opens today's log file and applies logs.level and logs.json.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logger = newDiscard()
		return nil
	}

	path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

// WithFields returns an entry carrying fields.
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any)                 { logger.Error(args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Warn(args ...any)                  { logger.Warn(args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Info(args ...any)                  { logger.Info(args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
