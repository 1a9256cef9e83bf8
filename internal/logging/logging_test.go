package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_TextToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := Setup(&buf, "", slog.LevelInfo)
	require.NoError(t, err)
	defer cleanup()

	logger.Debug("hidden")
	logger.Info("scored hand", "han", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=\"scored hand\"")
	assert.Contains(t, out, "han=3")
}

func TestSetup_FileTee(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "mahc.log")

	logger, cleanup, err := Setup(&buf, path, slog.LevelDebug)
	require.NoError(t, err)
	logger.Debug("batch started", "hands", 2)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"batch started"`)
	assert.Contains(t, buf.String(), `"hands":2`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
