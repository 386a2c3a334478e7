package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	path, level string
}

func (c testConfig) LogPath() string  { return c.path }
func (c testConfig) LogLevel() string { return c.level }

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "studyed.log")
	l, err := New(testConfig{path: path, level: "info"})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("login", "email", "ada@example.com", "password", "hunter22")
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.Contains(t, out, `"msg":"login"`)
	require.Contains(t, out, "ada@example.com")
	require.Contains(t, out, "[REDACTED]")
	require.NotContains(t, out, "hunter22")
	require.False(t, strings.Contains(out, "hidden"))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(testConfig{path: filepath.Join(t.TempDir(), "x.log"), level: "loud"})
	require.Error(t, err)
}

func TestEmptyPathIsNop(t *testing.T) {
	l, err := New(testConfig{})
	require.NoError(t, err)
	l.Info("nothing")
}

func TestRedactOddPairs(t *testing.T) {
	require.Equal(t, []any{"a", 1, "dangling"}, redact([]any{"a", 1, "dangling"}))
}
