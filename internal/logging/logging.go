// Package logging provides the process-wide logger shared by all packages.
package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	once   sync.Once
)

// GetLogger returns the shared logger, creating it on first use. Packages may
// call this from init; InitLogger later adjusts the same instance.
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logger = logrus.New()
		// CloudWatch ingests one JSON object per line from stdout.
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
	})
	return logger
}

// InitLogger sets the level of the shared logger.
func InitLogger(level logrus.Level) {
	GetLogger().SetLevel(level)
}

// ParseLevel converts a configured level name into a logrus level, falling
// back to info for unknown names so a typo never disables logging.
func ParseLevel(name string) logrus.Level {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
