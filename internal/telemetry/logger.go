// Package telemetry wraps a package-level logrus logger for the influence
// map, following the shape of Cognitive-Dungeon-cd-backend-go's
// pkg/logger: a global *logrus.Logger, an Init reading LOG_LEVEL/LOG_FORMAT
// from the environment, defaulting to info/text.
package telemetry

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// Log is the package-level logger. Set up by the package's init
	// function, which calls Init; Init is idempotent via initOnce.
	Log *logrus.Logger

	initOnce sync.Once
)

// Init configures the global logger from the environment. Called
// automatically from the package's init function; later calls are no-ops.
func Init() {
	initOnce.Do(func() {
		Log = logrus.New()

		level, err := logrus.ParseLevel(strings.ToLower(envOr("LOG_LEVEL", "info")))
		if err != nil {
			level = logrus.InfoLevel
		}
		Log.SetLevel(level)

		if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
			Log.SetFormatter(&logrus.JSONFormatter{})
		} else {
			Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}

		Log.SetOutput(os.Stdout)
	})
}

// DebugEnabled reports whether Debug-level logging is active, so hot
// paths can skip building log fields entirely when it is not.
func DebugEnabled() bool { return Log.IsLevelEnabled(logrus.DebugLevel) }

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func init() {
	Init()
}
