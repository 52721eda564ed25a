package commands

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger adapts logrus to statuspage.Logger.
type Logger struct {
	logger *logrus.Logger
}

// NewLogger creates a logger writing to out. Verbose enables debug output;
// otherwise only warnings and errors are shown.
func NewLogger(out io.Writer, verbose bool) *Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.WarnLevel)

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return &Logger{logger: logger}
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
