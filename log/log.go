package log

import (
	"time"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// New builds a logger writing colored text to stdout. When filename is
// non-empty, entries at or above level are also written to a rotating JSON
// log file.
func New(filename string, level logrus.Level) *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors: true, FullTimestamp: true, TimestampFormat: time.RFC822,
	})
	logger.SetLevel(level)
	logger.SetOutput(colorable.NewColorableStdout())

	if filename == "" {
		return logger
	}

	rotateFileHook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   filename,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: time.RFC822,
		},
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize file rotate hook: %v", err)
	}
	logger.AddHook(rotateFileHook)

	return logger
}
