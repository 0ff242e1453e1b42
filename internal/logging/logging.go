package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// EnvLevel is the environment variable that overrides the configured level.
const EnvLevel = "PICTUREDB_LOG_LEVEL"

// ParseLevel converts a level name to a log.Level. The empty string is info.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return log.InfoLevel, nil
	case "warning":
		return log.WarnLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// Level resolves the effective level from the configured value and the
// environment. An invalid environment value is ignored.
func Level(configured string) log.Level {
	if env := os.Getenv(EnvLevel); env != "" {
		if level, err := ParseLevel(env); err == nil {
			return level
		}
	}
	level, err := ParseLevel(configured)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// New returns a logger writing to w with timestamps and the "picturedb" prefix.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "picturedb",
		Level:           level,
	})
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}
