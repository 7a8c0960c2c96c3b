package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("production", &buf)

	l.Debug().Msg("hidden")
	l.Info().Str("postId", "p1").Msg("✅ [Post] Created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "story-album", entry["service"])
	assert.Equal(t, "p1", entry["postId"])
	assert.Equal(t, "✅ [Post] Created", entry["message"])
}

func TestNewWithWriter_DevelopmentEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("development", &buf)

	l.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
