// File: configstore/format_test.go
package configstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		path   string
		format Format
		ok     bool
	}{
		{"config.json", FormatJSON, true},
		{"/etc/app/Config.JSON", FormatJSON, true},
		{"config.ini", FormatINI, true},
		{"config.cfg", FormatINI, true},
		{"config.yaml", "", false},
		{"config.toml", "", false},
		{"config", "", false},
	}
	for _, tc := range cases {
		format, err := detectFormat(tc.path)
		if tc.ok {
			require.NoError(t, err, tc.path)
			assert.Equal(t, tc.format, format, tc.path)
		} else {
			assert.ErrorIs(t, err, ErrUnsupportedFormat, tc.path)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")
	store := New(WithAutoSave(false))
	require.NoError(t, store.Create(path, map[string]any{
		"server": map[string]any{"port": 8080, "host": "local"},
		"debug":  true,
	}, false))

	fresh := New()
	require.NoError(t, fresh.Load(path))

	port, err := fresh.Int64("port", 0, "server")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)

	host, err := fresh.String("host", "", "server")
	require.NoError(t, err)
	assert.Equal(t, "local", host)

	debug, err := fresh.Bool("debug", false)
	require.NoError(t, err)
	assert.True(t, debug)
}

func TestJSONOutputIsIndented(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")
	store := New()
	require.NoError(t, store.Create(path, map[string]any{
		"url": "http://example.com/?a=1&b=2",
	}, false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "    \"url\"")
	assert.Contains(t, string(raw), "&", "ampersands must not be HTML-escaped")
}

func TestINIRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")
	store := New(WithAutoSave(false))
	require.NoError(t, store.Create(path, map[string]any{
		"Server": map[string]any{"Port": 8080, "host": "local"},
	}, false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[Server]", "section casing preserved on disk")
	assert.Contains(t, string(raw), "Port", "key casing preserved on disk")

	fresh := New()
	require.NoError(t, fresh.Load(path))

	value, found := fresh.Get("Port", "Server")
	require.True(t, found)
	assert.Equal(t, "8080", value, "INI values come back as strings")
}

func TestINITopLevelScalarsGoToGeneral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.cfg")
	store := New(WithAutoSave(false))
	require.NoError(t, store.Create(path, map[string]any{
		"debug":  true,
		"server": map[string]any{"port": 8080},
	}, false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[general]")

	fresh := New()
	require.NoError(t, fresh.Load(path))
	value, found := fresh.Get("debug", "general")
	require.True(t, found)
	assert.Equal(t, "true", value)
}

func TestINIOutputIsSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")
	store := New(WithAutoSave(false))
	require.NoError(t, store.Create(path, map[string]any{
		"zeta":  map[string]any{"b": "2", "a": "1"},
		"alpha": map[string]any{"x": "9"},
	}, false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Less(t, strings.Index(text, "[alpha]"), strings.Index(text, "[zeta]"))
	assert.Less(t, strings.Index(text, "a = 1"), strings.Index(text, "b = 2"))
}
