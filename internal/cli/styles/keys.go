package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// KeyRow is one keybinding as shown by `fruitwm keys`.
type KeyRow struct {
	Action   string
	Chord    string
	Mask     uint16
	Keycodes []uint8 // nil when keycodes were not resolved
	Known    bool
}

// KeysRenderer renders the effective keybinding table.
type KeysRenderer struct {
	theme *Theme
}

// NewKeysRenderer creates a new keys renderer with the given theme.
func NewKeysRenderer(theme *Theme) *KeysRenderer {
	return &KeysRenderer{theme: theme}
}

// Render draws rows as a bordered table. The keycode column only appears
// when at least one row carries resolved keycodes.
func (r *KeysRenderer) Render(rows []KeyRow) string {
	if len(rows) == 0 {
		return fmt.Sprintf("\n  %s %s\n", r.theme.WarningStyle.Render(IconWarning), r.theme.Subtle.Render("No keybindings configured."))
	}

	resolved := false
	for _, row := range rows {
		if row.Keycodes != nil {
			resolved = true
			break
		}
	}

	headers := []string{"Action", "Keys", "Mask"}
	if resolved {
		headers = append(headers, "Keycodes")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.TableHeader
			}
			if row >= 0 && row < len(rows) && !rows[row].Known {
				return r.theme.TableMuted
			}
			return r.theme.TableCell
		})

	for _, row := range rows {
		action := row.Action
		if !row.Known {
			action += " (unknown)"
		}
		cells := []string{action, row.Chord, fmt.Sprintf("0x%02x", row.Mask)}
		if resolved {
			cells = append(cells, formatKeycodes(row.Keycodes))
		}
		t.Row(cells...)
	}

	title := fmt.Sprintf("\n  %s %s\n", lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconKeyboard), r.theme.Title.Render("Keybindings"))
	return title + t.Render() + "\n"
}

func formatKeycodes(codes []uint8) string {
	if len(codes) == 0 {
		return "-"
	}
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = fmt.Sprintf("%d", code)
	}
	return strings.Join(parts, ",")
}
