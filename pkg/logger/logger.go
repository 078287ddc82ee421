package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared structured logger for the service.
var Log *logrus.Logger

// InitLogger configures Log with JSON output on stdout. Call once at
// startup before anything logs through it.
func InitLogger() {
	Log = logrus.New()
	Log.Out = os.Stdout
	Log.SetFormatter(&logrus.JSONFormatter{})

	// Log level can be changed depending on environment
	Log.SetLevel(logrus.InfoLevel)
}
