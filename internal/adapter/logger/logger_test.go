package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerAdapter_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLoggerAdapter("production", "info", &buf)

	l.Info("Bike registered", map[string]interface{}{
		"bike_id": "b-1",
		"user_id": "u-1",
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Bike registered", entry["msg"])
	assert.Equal(t, "b-1", entry["bike_id"])
	assert.Equal(t, "u-1", entry["user_id"])
	assert.Contains(t, entry, "timestamp")
}

func TestLoggerAdapter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := newLoggerAdapter("production", "warn", &buf)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	l.Warn("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerAdapter_ConsoleOutsideProduction(t *testing.T) {
	var buf bytes.Buffer
	l := newLoggerAdapter("development", "debug", &buf)

	l.Debug("cache miss", map[string]interface{}{"key": "bike:1"})

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "cache miss")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
