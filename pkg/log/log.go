package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface used throughout the emulator.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text to stderr at info level.
func New() Logger {
	return NewWithOutput(os.Stderr, false)
}

// NewWithOutput returns a Logger writing to w. When debug is
// set, Debugf messages are emitted as well.
func NewWithOutput(w io.Writer, debug bool) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
