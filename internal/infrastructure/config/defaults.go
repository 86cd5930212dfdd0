package config

// Default configuration constants
const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogAgeDays = 7 // days

	defaultMoveButton   = 1
	defaultResizeButton = 3
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for fruitwm.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxAge:        defaultMaxLogAgeDays,
		},
		Display: DisplayConfig{
			// Name is taken from $DISPLAY unless set
		},
		Pointer: PointerConfig{
			Modifiers:    []string{"alt"},
			MoveButton:   defaultMoveButton,
			ResizeButton: defaultResizeButton,
		},
		Keybindings: DefaultKeybindings(),
	}
}

// DefaultKeybindings returns the built-in keybinding table.
func DefaultKeybindings() []KeybindingConfig {
	alt := func() []string { return []string{"alt"} }
	return []KeybindingConfig{
		{Action: "FOCUS_LEFT", Key: "h", Modifiers: alt()},
		{Action: "FOCUS_RIGHT", Key: "l", Modifiers: alt()},
		{Action: "FOCUS_UP", Key: "k", Modifiers: alt()},
		{Action: "FOCUS_DOWN", Key: "j", Modifiers: alt()},
		{Action: "CYCLE_WINDOWS", Key: "Tab", Modifiers: alt()},
		{Action: "SPLIT_VERTICAL", Key: "o", Modifiers: alt()},
		{Action: "SPLIT_HORIZONTAL", Key: "u", Modifiers: alt()},
		{Action: "DESTROY_SPLIT", Key: "r", Modifiers: alt()},
		{Action: "SPAWN_WORKSPACE", Key: "n", Modifiers: alt()},
		{Action: "BREAK_CLIENT", Key: "n", Modifiers: []string{"alt", "shift"}},
	}
}
