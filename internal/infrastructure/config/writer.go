package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const fileHeader = "# fruitwm configuration. Run 'fruitwm config schema' for the JSON schema.\n"

// sectionComments are written above the first header of each section.
var sectionComments = map[string]string{
	"logging":     "# Levels: trace, debug, info, warn, error. Format: console or json.",
	"display":     "# Empty name uses $DISPLAY.",
	"pointer":     "# Hold the modifiers and drag with move_button or resize_button.",
	"keybindings": "# Modifiers: shift, capslock, control, alt, numlock, super, scrollock.\n# Every binding matching a key press fires, in file order.",
}

// WriteConfig encodes cfg as commented TOML at path.
// Sections follow the field order of Config and keybindings keep their order.
func WriteConfig(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, []byte(annotateSections(buf.String())), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// annotateSections prefixes the file header and puts each section comment
// above the first [name] or [[name]] header of that section.
func annotateSections(content string) string {
	var out strings.Builder
	out.WriteString(fileHeader)

	seen := make(map[string]bool)
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if name, ok := tableName(line); ok && !seen[name] {
			seen[name] = true
			if comment, has := sectionComments[name]; has {
				out.WriteString("\n" + comment + "\n")
			}
		}
		out.WriteString(line + "\n")
	}
	return out.String()
}

// tableName returns the name of a [table] or [[array]] header line.
func tableName(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return "", false
	}
	return strings.Trim(line, "[]"), true
}
