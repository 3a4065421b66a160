// Package logger configures the process-wide leveled logger.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New builds a logger writing to w at the given level. Unknown levels fall
// back to info.
func New(w io.Writer, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "hyperhub",
	})
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// Init installs a stderr logger as the package default so that the
// package-level log.Warn/log.Info helpers pick it up.
func Init(level string) *log.Logger {
	l := New(os.Stderr, level)
	log.SetDefault(l)
	return l
}
