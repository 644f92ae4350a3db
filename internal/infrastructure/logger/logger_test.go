package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/imagegen-api/internal/config"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn", "json")
	require.NoError(t, err)

	log.Info().Msg("dropped")
	log.Warn().Str("component", "test").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "test", entry["component"])
}

func TestNewWithWriterRejectsBadInput(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, "chatty", "json")
	assert.Error(t, err)

	_, err = NewWithWriter(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	_, err := New(&config.Config{ServiceName: "imagegen-api", LogLevel: "debug", LogFormat: "console"})
	assert.NoError(t, err)
}
