package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))
	return entry
}

// ── NewLogger ───────────────────────────────────────────────────────────────

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("bridge")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "bridge", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "hello", entry["message"])
}

func TestNewLogger_Globals(t *testing.T) {
	NewLogger("globals")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// ── NewClientLogger ─────────────────────────────────────────────────────────

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bluedog.log")

	l := NewClientLogger("tui", path)
	l.Info().Str("screen", "timeline").Msg("opened")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	entry := decodeEntry(t, data)
	assert.Equal(t, "tui", entry["role"])
	assert.Equal(t, "timeline", entry["screen"])
}

func TestNewClientLogger_EmptyPathDiscards(t *testing.T) {
	l := NewClientLogger("tui", "")
	require.NotNil(t, l)
	// must not panic or write to stdout
	l.Info().Msg("dropped")
}

func TestNewClientLogger_UnwritablePathDiscards(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// parent is a regular file, so MkdirAll fails
	l := NewClientLogger("tui", filepath.Join(blocker, "sub", "log"))
	require.NotNil(t, l)
	l.Info().Msg("dropped")
}

// ── SetLevel ────────────────────────────────────────────────────────────────

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name  string
		level string
		ok    bool
		want  zerolog.Level
	}{
		{name: "warn", level: "warn", ok: true, want: zerolog.WarnLevel},
		{name: "upper case", level: "ERROR", ok: true, want: zerolog.ErrorLevel},
		{name: "unknown keeps level", level: "loud", ok: false, want: zerolog.DebugLevel},
		{name: "empty keeps level", level: "", ok: false, want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
			assert.Equal(t, tt.ok, SetLevel(tt.level))
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

// ── Nop / child ─────────────────────────────────────────────────────────────

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "inherited-role", entry["role"])
}

// ── FromContext / FromRequest ───────────────────────────────────────────────

func TestFromContext(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.True(t, strings.Contains(buf.String(), `"trace_id":"abc"`))
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/timeline", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "req", entry["trace_id"])
}
