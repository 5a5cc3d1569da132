package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// SetLevel sets the minimum level for log output. Accepts 'debug', 'info', 'warn' and 'error'.
func SetLevel(level string) error {
	l, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid log level '%s'", level)
	}

	logger.SetLevel(l)

	return nil
}

// SetFormat selects between 'text' and 'json' output.
func SetFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})

	default:
		return fmt.Errorf("invalid log format '%s'", format)
	}

	return nil
}

func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

func IsDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

// With returns an entry carrying the key/value pairs, e.g. With("tab", tab).Warnf(...)
func With(kv ...any) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[fmt.Sprintf("%v", kv[i])] = kv[i+1]
	}

	return logger.WithFields(fields)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	logger.Fatalf(format, args...)
}
