package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/fruitwm/internal/cli/styles"
	"github.com/bnema/fruitwm/internal/logging"
)

var (
	logsFollow bool
	logsLines  int
)

const (
	defaultLogsLines = 50
	followInterval   = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the window manager log file",
	Long: `Show the tail of fruitwm.log from the configured log directory.

The log file is only written when [logging] enable_file_log is true.

Examples:
  fruitwm logs              # Last 50 lines
  fruitwm logs -n 200       # Last 200 lines
  fruitwm logs -f           # Follow new lines`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath := filepath.Join(app.Config.Logging.LogDir, logging.LogFileName)
	if _, err := os.Stat(logPath); err != nil {
		return fmt.Errorf("no log file at %s (set [logging] enable_file_log = true)", logPath)
	}

	out := cmd.OutOrStdout()
	if err := showLog(out, logPath, logsLines, app.Theme); err != nil {
		return err
	}
	if !logsFollow {
		return nil
	}
	return followLog(cmd.Context(), out, logPath, app.Theme)
}

// showLog prints the last lines of the log file.
func showLog(out io.Writer, logPath string, lines int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	tail := make([]string, 0, lines)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if lines <= 0 {
			continue
		}
		if len(tail) == lines {
			tail = tail[1:]
		}
		tail = append(tail, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range tail {
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}
	return nil
}

// followLog prints lines appended to the log file until ctx is done.
func followLog(ctx context.Context, out io.Writer, logPath string, theme *styles.Theme) error {
	if ctx == nil {
		ctx = context.Background()
	}
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}
	fmt.Fprintln(out, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err == nil {
			fmt.Fprintln(out, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
			continue
		}
		if err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(followInterval):
		}
	}
}

// logEntry is the subset of a zerolog JSON line shown by the logs command.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}
	return line
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "fatal", "panic":
		levelStr = theme.ErrorStyle.Bold(true).Render("FTL")
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}
