package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/newsview/internal/application/settings"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: " INFO ", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", want: slog.LevelInfo},
		{in: "verbose", want: slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("hidden")
	log.Warn("shown", slog.String("url", "http://localhost:8080/api/rss"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "app=newsview")
	assert.Contains(t, out, "logging_test.go")
	assert.NotContains(t, out, string(filepath.Separator)+"logging_test.go:", "source path should be trimmed to its base name")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "newsview.log")

	log, closer, err := New(settings.LogConfig{File: path, Level: "debug"})
	require.NoError(t, err)
	log.Debug("debug record")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "debug record"))
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	log, closer, err := New(settings.LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Error("nowhere")
	assert.NoError(t, closer.Close())
}
