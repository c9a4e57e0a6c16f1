// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stdout. Production and staging get JSON
// output; other environments get human-readable text. An unknown level falls
// back to info with a warning.
func New(level, env string) *logrus.Logger {
	return NewWithOutput(os.Stdout, level, env)
}

func NewWithOutput(out io.Writer, level, env string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	switch strings.ToLower(env) {
	case "production", "staging":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.Warnf("invalid log level %q, defaulting to info", level)
		return log
	}
	log.SetLevel(lvl)
	return log
}
