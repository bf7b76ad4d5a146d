package logger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// New builds the process logger. JSON output uses the @timestamp/message
// field names the log shipper expects; "text" is meant for local runs.
func New(out io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)

	if format == "text" {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "@timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		l.WithField("level", level).Warn("unknown log level, using info")
	}
	l.SetLevel(lvl)
	return l
}
