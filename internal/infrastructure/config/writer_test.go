package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerNames(content string) []string {
	var names []string
	for _, line := range strings.Split(content, "\n") {
		if name, ok := tableName(line); ok {
			names = append(names, name)
		}
	}
	return names
}

func TestWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	require.NoError(t, WriteConfig(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	names := headerNames(text)
	require.GreaterOrEqual(t, len(names), 4)
	assert.Equal(t, []string{"logging", "display", "pointer", "keybindings"}, names[:4])
	for _, name := range names[4:] {
		assert.Equal(t, "keybindings", name)
	}

	assert.True(t, strings.HasPrefix(text, fileHeader))
	assert.Equal(t, 1, strings.Count(text, "# Every binding matching a key press fires"))
	assert.Less(t, strings.Index(text, "# Every binding matching"), strings.Index(text, "[[keybindings]]"))

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded), text)
	require.Len(t, decoded.Keybindings, len(cfg.Keybindings))
	for i, kb := range cfg.Keybindings {
		assert.Equal(t, kb.Action, decoded.Keybindings[i].Action, "keybinding %d", i)
		assert.Equal(t, kb.Key, decoded.Keybindings[i].Key, "keybinding %d", i)
	}
}

func TestWriteConfig_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfig(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestTableName(t *testing.T) {
	tests := []struct {
		line string
		name string
		ok   bool
	}{
		{"[logging]", "logging", true},
		{"[[keybindings]]", "keybindings", true},
		{"  [pointer]  ", "pointer", true},
		{"level = 'info'", "", false},
		{"modifiers = ['alt']", "", false},
	}
	for _, tt := range tests {
		name, ok := tableName(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.name, name, tt.line)
	}
}
