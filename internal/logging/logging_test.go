package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestInit_ConsoleLevel(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	_, closer := Init(Options{Level: "warn", Output: &buf})
	defer closer.Close()

	slog.Info("hidden")
	slog.Warn("shown", "workspace_id", "abc")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
	require.Contains(t, out, "workspace_id=abc")
	require.Contains(t, out, "app=studio")
}

func TestInit_JSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	logger, closer := Init(Options{Format: "json", Output: &buf})
	defer closer.Close()

	logger.Info("hello", "n", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, 3.0, rec["n"])
}

func TestInit_File(t *testing.T) {
	restoreDefault(t)
	path := filepath.Join(t.TempDir(), "studio.log")
	var buf bytes.Buffer
	logger, closer := Init(Options{Output: &buf, File: path})

	logger.Info("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"to both"`)
	require.Contains(t, buf.String(), "to both")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
	require.Equal(t, slog.LevelInfo, ParseLevel("nope"))
}
