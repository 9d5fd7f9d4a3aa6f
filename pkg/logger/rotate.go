package logger

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogRotationConfig controls the rotating log file.
type LogRotationConfig struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// DefaultLogRotationConfig keeps five compressed 1MB files for 30 days.
func DefaultLogRotationConfig(filename string) LogRotationConfig {
	return LogRotationConfig{
		Filename:   filename,
		MaxSize:    1,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}
}

// NewFileLogger returns an info-level logger writing to a lumberjack
// rotating file. Close releases the file.
func NewFileLogger(cfg LogRotationConfig) *LogrusLogger {
	w := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	l.SetLevel(logrus.InfoLevel)
	return &LogrusLogger{entry: l, closer: w}
}
