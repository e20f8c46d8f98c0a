package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", "text").GetLevel())
	assert.Equal(t, logrus.WarnLevel, New("WARN", "text").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("", "text").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("chatty", "text").GetLevel())
}

func TestNewJSON(t *testing.T) {
	log := New("info", "json")
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.WithField("component", "test").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "test", entry["component"])
}

func TestNewText(t *testing.T) {
	log := New("info", "text")
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
