// File: configstore/logging.go
package configstore

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// WarnFunc receives non-fatal diagnostics from a Store, such as a
// construction call naming a different file than the one already bound.
// It is fire-and-forget: it must not block or fail the calling operation.
type WarnFunc func(msg string)

var (
	log     *logrus.Logger
	logOnce sync.Once
)

// stdLogger returns the package logger, initializing it on first use.
// Warnings go to stderr at warn level; setting CONFIGSTORE_DEBUG to a level
// name (debug, info, warn, error) adjusts verbosity.
func stdLogger() *logrus.Logger {
	logOnce.Do(func() {
		log = logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.WarnLevel)
		if level := os.Getenv("CONFIGSTORE_DEBUG"); level != "" {
			switch strings.ToLower(level) {
			case "debug":
				log.SetLevel(logrus.DebugLevel)
			case "info":
				log.SetLevel(logrus.InfoLevel)
			case "warn":
				log.SetLevel(logrus.WarnLevel)
			case "error":
				log.SetLevel(logrus.ErrorLevel)
			}
		}
	})
	return log
}

// defaultWarn is the warn sink used when a Store is built without one.
func defaultWarn(msg string) {
	stdLogger().Warn(msg)
}
