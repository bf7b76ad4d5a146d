package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "debug", "json")

	l.WithField("route", "/login").Info("request handled")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request handled", line["message"])
	assert.Equal(t, "/login", line["route"])
	assert.Contains(t, line, "@timestamp")
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "chatty", "text")

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.Contains(t, buf.String(), "unknown log level")

	buf.Reset()
	l.Debug("hidden")
	assert.Empty(t, buf.String())
}
