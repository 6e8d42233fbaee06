package logging

// Package logging builds the categorized application loggers. Each category
// appends to its own file under the logs directory so that dictionary,
// update, and configuration activity can be inspected independently.

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger categories. Paths for each must be present in the map passed to New.
const (
	CategoryApp    = "app"
	CategoryDict   = "dictionary"
	CategoryUpdate = "update"
	CategoryConfig = "config"
)

const timeFormat = "2006-01-02 15:04:05"

// Log bundles the categorized loggers used across the application. It is
// created once at startup and passed explicitly to every component that
// needs it.
type Log struct {
	App    *log.Logger
	Dict   *log.Logger
	Update *log.Logger
	Config *log.Logger

	files []io.Closer
}

// New creates the categorized loggers, each writing to its file and
// mirroring to stderr. Debug builds log at debug level.
func New(logFiles map[string]string, debug bool) (*Log, error) {
	l := &Log{}

	categories := []struct {
		name string
		dst  **log.Logger
	}{
		{CategoryApp, &l.App},
		{CategoryDict, &l.Dict},
		{CategoryUpdate, &l.Update},
		{CategoryConfig, &l.Config},
	}

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	for _, c := range categories {
		path, ok := logFiles[c.name]
		if !ok {
			l.Close()
			return nil, fmt.Errorf("no log file configured for category %q", c.name)
		}

		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			l.Close()
			return nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		l.files = append(l.files, f)

		*c.dst = log.NewWithOptions(io.MultiWriter(f, os.Stderr), log.Options{
			Prefix:          c.name,
			Level:           level,
			ReportTimestamp: true,
			TimeFormat:      timeFormat,
		})
	}

	return l, nil
}

// Nop returns a Log whose loggers discard everything. Intended for tests.
func Nop() *Log {
	discard := log.NewWithOptions(io.Discard, log.Options{})
	return &Log{
		App:    discard,
		Dict:   discard,
		Update: discard,
		Config: discard,
	}
}

// Close closes the underlying log files.
func (l *Log) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
	l.files = nil
}
