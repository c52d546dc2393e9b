// Package logging holds the shared diagnostic logger for Fib Bench.
// Report lines are printed with fmt by each tool; errors and warnings go here.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Logger returns the process-wide diagnostic logger.
func Logger() *logrus.Logger {
	return logger
}

// SetOutput redirects diagnostics, returning the previous writer so tests can restore it.
func SetOutput(w io.Writer) io.Writer {
	prev := logger.Out
	logger.SetOutput(w)
	return prev
}

// WithComponent tags a diagnostic with the component that raised it.
func WithComponent(name string) *logrus.Entry {
	return logger.WithField("component", name)
}
