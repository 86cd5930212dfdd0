package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a new configuration manager.
// An empty configFile searches the XDG config directory for config.toml.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
	}

	// FRUITWM_LOGGING_LEVEL style variables are handled by AutomaticEnv.
	v.SetEnvPrefix("FRUITWM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "FRUITWM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FRUITWM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FRUITWM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FRUITWM_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("display.name", "FRUITWM_DISPLAY", "DISPLAY"); err != nil {
		return nil, fmt.Errorf("failed to bind DISPLAY: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.configFile == "" {
		if err := EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	notFound := errors.As(err, &configFileNotFoundError) || errors.Is(err, os.ErrNotExist)
	switch {
	case notFound && m.configFile != "":
		return fmt.Errorf("config file %s does not exist", m.configFile)
	case notFound:
		configFile, pathErr := GetConfigFile()
		if pathErr != nil {
			return pathErr
		}
		if createErr := createDefaultConfig(configFile); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configFile,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
		return nil
	default:
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configDir, _ := GetConfigDir()
			configFile = filepath.Join(configDir, "config.toml")
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "", "text", defaultLogFormat:
		config.Logging.Format = defaultLogFormat
	default:
		config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
	config.Display.Name = strings.TrimSpace(config.Display.Name)
	config.Pointer.Modifiers = normalizeModifiers(config.Pointer.Modifiers)

	for i := range config.Keybindings {
		kb := &config.Keybindings[i]
		kb.Action = strings.ToUpper(strings.TrimSpace(kb.Action))
		kb.Key = strings.TrimSpace(kb.Key)
		kb.Modifiers = normalizeModifiers(kb.Modifiers)
	}
}

func normalizeModifiers(mods []string) []string {
	out := make([]string, 0, len(mods))
	for _, mod := range mods {
		mod = strings.ToLower(strings.TrimSpace(mod))
		if mod == "" || slices.Contains(out, mod) {
			continue
		}
		out = append(out, mod)
	}
	return out
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Pointer.Modifiers = slices.Clone(m.config.Pointer.Modifiers)
	configCopy.Keybindings = make([]KeybindingConfig, len(m.config.Keybindings))
	for i, kb := range m.config.Keybindings {
		kb.Modifiers = slices.Clone(kb.Modifiers)
		configCopy.Keybindings[i] = kb
	}
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the default configuration and its JSON schema.
func createDefaultConfig(configFile string) error {
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfig(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := WriteSchemaFile(filepath.Join(filepath.Dir(configFile), "config.schema.json")); err != nil {
		return fmt.Errorf("failed to write config schema: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setDisplayDefaults(defaults)
	m.setPointerDefaults(defaults)
	m.viper.SetDefault("keybindings", defaults.Keybindings)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
}

func (m *Manager) setDisplayDefaults(defaults *Config) {
	m.viper.SetDefault("display.name", defaults.Display.Name)
}

func (m *Manager) setPointerDefaults(defaults *Config) {
	m.viper.SetDefault("pointer.modifiers", defaults.Pointer.Modifiers)
	m.viper.SetDefault("pointer.move_button", defaults.Pointer.MoveButton)
	m.viper.SetDefault("pointer.resize_button", defaults.Pointer.ResizeButton)
}
