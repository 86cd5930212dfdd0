package config

import (
	"fmt"
	"strings"

	"github.com/bnema/fruitwm/internal/domain/entity"
)

const maxPointerButton = 5

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePointer(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be 'console' or 'json' (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validatePointer(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, validateModifiers("pointer.modifiers", config.Pointer.Modifiers)...)

	if config.Pointer.MoveButton < 1 || config.Pointer.MoveButton > maxPointerButton {
		validationErrors = append(validationErrors, fmt.Sprintf("pointer.move_button must be between 1 and %d", maxPointerButton))
	}
	if config.Pointer.ResizeButton < 1 || config.Pointer.ResizeButton > maxPointerButton {
		validationErrors = append(validationErrors, fmt.Sprintf("pointer.resize_button must be between 1 and %d", maxPointerButton))
	}
	if config.Pointer.MoveButton == config.Pointer.ResizeButton {
		validationErrors = append(validationErrors, "pointer.move_button and pointer.resize_button must differ")
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	var validationErrors []string
	for i, kb := range config.Keybindings {
		field := fmt.Sprintf("keybindings[%d]", i)
		if kb.Action == "" {
			validationErrors = append(validationErrors, field+".action cannot be empty")
		}
		if kb.Key == "" {
			validationErrors = append(validationErrors, field+".key cannot be empty")
		}
		validationErrors = append(validationErrors, validateModifiers(field+".modifiers", kb.Modifiers)...)
	}
	return validationErrors
}

func validateModifiers(field string, mods []string) []string {
	var validationErrors []string
	for _, mod := range mods {
		if _, err := entity.ParseModifier(mod); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"%s: %v (valid: %s)",
				field,
				err,
				strings.Join(entity.ModifierNames(), ", "),
			))
		}
	}
	return validationErrors
}
