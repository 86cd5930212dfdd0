package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fruitwm/internal/domain/entity"
)

// isolateXDG points every XDG lookup at a temporary directory.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("DISPLAY", "")
	t.Setenv("FRUITWM_DISPLAY", "")
	t.Setenv("FRUITWM_LOG_LEVEL", "")
	t.Setenv("FRUITWM_LOG_FORMAT", "")
	return root
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func TestSetDefaults(t *testing.T) {
	isolateXDG(t)
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, "console", mgr.viper.GetString("logging.format"))
	assert.Equal(t, 1, mgr.viper.GetInt("pointer.move_button"))
	assert.Equal(t, 3, mgr.viper.GetInt("pointer.resize_button"))
	assert.Equal(t, []string{"alt"}, mgr.viper.GetStringSlice("pointer.modifiers"))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager("")
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(root, "config", appName, "config.toml")
	assert.FileExists(t, configFile)
	assert.FileExists(t, filepath.Join(root, "config", appName, "config.schema.json"))
	assert.Equal(t, configFile, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, DefaultKeybindings(), cfg.Keybindings)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolateXDG(t)
	path := writeConfig(t, `
[logging]
level = "DEBUG"
format = "text"

[display]
name = " :1 "

[pointer]
modifiers = ["Super", "super"]
move_button = 2
resize_button = 3

[[keybindings]]
action = " split_vertical "
key = "o"
modifiers = ["Alt", "SHIFT"]

[[keybindings]]
action = "DESTROY_SPLIT"
key = "r"
modifiers = ["alt"]
`)

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, ":1", cfg.Display.Name)
	assert.Equal(t, []string{"super"}, cfg.Pointer.Modifiers)
	assert.Equal(t, 2, cfg.Pointer.MoveButton)
	require.Len(t, cfg.Keybindings, 2)
	assert.Equal(t, KeybindingConfig{Action: "SPLIT_VERTICAL", Key: "o", Modifiers: []string{"alt", "shift"}}, cfg.Keybindings[0])
	assert.Equal(t, "DESTROY_SPLIT", cfg.Keybindings[1].Action)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.toml")
}

func TestLoad_InvalidConfig(t *testing.T) {
	isolateXDG(t)
	path := writeConfig(t, `
[pointer]
move_button = 3
resize_button = 3
`)

	mgr, err := NewManager(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("FRUITWM_LOG_LEVEL", "warn")
	t.Setenv("DISPLAY", ":7")
	path := writeConfig(t, "[logging]\nlevel = \"debug\"\n")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ":7", cfg.Display.Name)
}

func TestGet_ReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager(writeConfig(t, ""))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Keybindings[0].Modifiers[0] = "super"
	cfg.Pointer.Modifiers = nil

	fresh := mgr.Get()
	assert.Equal(t, []string{"alt"}, fresh.Keybindings[0].Modifiers)
	assert.Equal(t, []string{"alt"}, fresh.Pointer.Modifiers)
}

func TestGet_BeforeLoadReturnsDefaults(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager("")
	require.NoError(t, err)

	assert.Equal(t, DefaultKeybindings(), mgr.Get().Keybindings)
}

func TestWatch_RequiresLoad(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager("")
	require.NoError(t, err)

	assert.Error(t, mgr.Watch())
}

func TestKeybindingsGateway(t *testing.T) {
	isolateXDG(t)
	path := writeConfig(t, `
[[keybindings]]
action = "split_horizontal"
key = "u"
modifiers = ["alt", "control"]
`)
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	gw := NewKeybindingsGateway(mgr)
	ctx := context.Background()

	bindings, err := gw.GetKeybindings(ctx)
	require.NoError(t, err)
	require.Len(t, bindings, 1)
	assert.Equal(t, entity.Keybinding{
		Action:    entity.ActionSplitHorizontal,
		Key:       "u",
		Modifiers: []string{"alt", "control"},
	}, bindings[0])

	defaults, err := gw.GetDefaultKeybindings(ctx)
	require.NoError(t, err)
	require.Len(t, defaults, 10)
	assert.Equal(t, entity.ActionBreakClient, defaults[9].Action)
	assert.Equal(t, []string{"alt", "shift"}, defaults[9].Modifiers)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, schemaID)
	assert.Contains(t, schema, `"keybindings"`)
	assert.Contains(t, schema, `"move_button"`)
	assert.NotContains(t, schema, `"MoveButton"`)
}
