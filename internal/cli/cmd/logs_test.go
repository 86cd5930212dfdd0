package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fruitwm/internal/cli/styles"
	"github.com/bnema/fruitwm/internal/logging"
)

func TestShowLog_TailsLastLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), logging.LogFileName)
	var content strings.Builder
	for _, msg := range []string{"one", "two", "three", "four"} {
		content.WriteString(`{"level":"info","time":"2026-01-01T10:00:00Z","message":"` + msg + `"}` + "\n")
	}
	require.NoError(t, os.WriteFile(logPath, []byte(content.String()), 0o600))

	var out bytes.Buffer
	require.NoError(t, showLog(&out, logPath, 2, styles.NewTheme()))

	assert.NotContains(t, out.String(), "two")
	assert.Contains(t, out.String(), "three")
	assert.Contains(t, out.String(), "four")
	assert.Equal(t, 2, strings.Count(out.String(), "\n"))
}

func TestColorizeLogLine(t *testing.T) {
	theme := styles.NewTheme()

	line := colorizeLogLine(`{"level":"warn","time":"2026-01-01T10:00:00Z","component":"event_loop","message":"display error"}`, theme)
	assert.Contains(t, line, "WRN")
	assert.Contains(t, line, "event_loop:")
	assert.Contains(t, line, "display error")

	assert.Equal(t, "plain text", colorizeLogLine("plain text", theme))
}
