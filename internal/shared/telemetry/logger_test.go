package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEmitsJSONLine(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Error("generation.failed", map[string]any{
		"request_id": "req-1",
		"status":     500,
		"error":      errors.New("boom"),
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &payload))
	assert.Equal(t, "error", payload["level"])
	assert.Equal(t, "generation.failed", payload["msg"])
	assert.Equal(t, "req-1", payload["request_id"])
	assert.EqualValues(t, 500, payload["status"])
	assert.Equal(t, "boom", payload["error"])
	assert.NotEmpty(t, payload["ts"])
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Info("a", nil)
	Warn("b", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"info"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
}
