package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper/internal/config"
)

// Setup configures log from the config. With a log file set, entries only go
// to the rotated file so they do not interleave with the board on screen.
func Setup(log *logrus.Logger, c *config.Config) error {
	logLevel := logrus.InfoLevel
	if c.Log.Level != "" {
		level, err := logrus.ParseLevel(c.Log.Level)
		if err != nil {
			return fmt.Errorf("unable to parse log level: %w", err)
		}
		logLevel = level
	}
	if c.Development() && logLevel < logrus.DebugLevel {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   c.Development() && c.Log.File == "",
		FullTimestamp: true,
	})

	if c.Log.File == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.Log.File,
		MaxSize:    c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAgeDays,
		Level:      logLevel,
		Formatter: &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", c.Log.File, err)
	}
	log.AddHook(hook)
	log.SetOutput(io.Discard)

	return nil
}
