package utils

import (
	"fmt" // Error wrapping

	"github.com/sirupsen/logrus" // Logging library
)

// ConfigureLogger sets the global logrus level and formatter.
// Production uses JSON output, development a readable text format.
func ConfigureLogger(level string, jsonOutput bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	if jsonOutput {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
