package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests swap the global logger and must not run in parallel.

func restore(t *testing.T) {
	t.Helper()

	prev := L
	t.Cleanup(func() { L = prev })
}

func TestInitDisabledDiscards(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	closeFn, err := Init(DefaultOptions(), &buf)
	require.NoError(t, err)
	defer closeFn()

	Error("dropped")
	assert.Empty(t, buf.String())
}

func TestInitStderrText(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	closeFn, err := Init(Options{Enabled: true, Level: slog.LevelInfo}, &buf)
	require.NoError(t, err)
	defer closeFn()

	Debug("hidden")
	Info("stage advanced", "from", "seed", "to", "soil")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "stage advanced")
	assert.Contains(t, out, "from=seed")
}

func TestInitFileJSON(t *testing.T) {
	restore(t)

	path := filepath.Join(t.TempDir(), "logs", "remapper.log")
	closeFn, err := Init(Options{Enabled: true, File: path, Level: slog.LevelDebug}, nil)
	require.NoError(t, err)

	Debug("resolve", "ranges", 2)
	Warn("careful")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "resolve", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
