package config

// Config represents the complete configuration for fruitwm.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Display selects the X display to manage. Empty means $DISPLAY.
	Display DisplayConfig `mapstructure:"display" yaml:"display" toml:"display"`
	// Pointer configures window dragging with the mouse.
	Pointer PointerConfig `mapstructure:"pointer" yaml:"pointer" toml:"pointer"`
	// Keybindings are matched in order; every matching binding fires.
	Keybindings []KeybindingConfig `mapstructure:"keybindings" yaml:"keybindings" toml:"keybindings"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
	// EnableFileLog also writes JSON logs to LogDir/fruitwm.log.
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	// MaxAge is the number of days rotated log files are kept.
	MaxAge int `mapstructure:"max_age" yaml:"max_age" toml:"max_age" jsonschema:"minimum=0"`
}

// DisplayConfig selects the X server connection.
type DisplayConfig struct {
	Name string `mapstructure:"name" yaml:"name" toml:"name"`
}

// PointerConfig selects the modifier and buttons used to move and resize windows.
type PointerConfig struct {
	Modifiers    []string `mapstructure:"modifiers" yaml:"modifiers" toml:"modifiers"`
	MoveButton   int      `mapstructure:"move_button" yaml:"move_button" toml:"move_button" jsonschema:"minimum=1,maximum=5"`
	ResizeButton int      `mapstructure:"resize_button" yaml:"resize_button" toml:"resize_button" jsonschema:"minimum=1,maximum=5"`
}

// KeybindingConfig binds a key plus modifiers to an action.
type KeybindingConfig struct {
	Action    string   `mapstructure:"action" yaml:"action" toml:"action"`
	Key       string   `mapstructure:"key" yaml:"key" toml:"key"`
	Modifiers []string `mapstructure:"modifiers" yaml:"modifiers" toml:"modifiers"`
}
