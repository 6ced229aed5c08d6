package logtail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#738091"))
	msgStyle   = lipgloss.NewStyle().Bold(true)
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#719cd6"))
	levelStyle = map[string]lipgloss.Style{
		"DEBUG": lipgloss.NewStyle().Foreground(lipgloss.Color("#63cdcf")),
		"INFO":  lipgloss.NewStyle().Foreground(lipgloss.Color("#81b29a")),
		"WARN":  lipgloss.NewStyle().Foreground(lipgloss.Color("#dbc074")).Bold(true),
		"ERROR": lipgloss.NewStyle().Foreground(lipgloss.Color("#c94f6d")).Bold(true),
	}
)

// Field is one key=value pair of a slog text record.
type Field struct {
	Key   string
	Value string
}

// Parse splits a slog text record into fields. Quoted values keep their
// quotes. Lines that are not key=value records yield nil.
func Parse(line string) []Field {
	var fields []Field
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 || strings.ContainsAny(rest[:eq], " \t") {
			return nil
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		end := valueEnd(rest)
		fields = append(fields, Field{Key: key, Value: rest[:end]})
		rest = strings.TrimLeft(rest[end:], " ")
	}
	return fields
}

// valueEnd returns the length of the value at the start of s.
func valueEnd(s string) int {
	if !strings.HasPrefix(s, `"`) {
		if i := strings.IndexByte(s, ' '); i >= 0 {
			return i
		}
		return len(s)
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(s)
}

// Colorize styles one slog text record. Other lines are returned unchanged.
func Colorize(line string) string {
	fields := Parse(line)
	if fields == nil {
		return line
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		switch f.Key {
		case "time":
			parts = append(parts, timeStyle.Render(f.Value))
		case "level":
			style, ok := levelStyle[f.Value]
			if !ok {
				style = lipgloss.NewStyle()
			}
			parts = append(parts, style.Render(f.Value))
		case "msg":
			parts = append(parts, msgStyle.Render(strings.Trim(f.Value, `"`)))
		default:
			parts = append(parts, keyStyle.Render(f.Key+"=")+f.Value)
		}
	}
	return strings.Join(parts, " ")
}

// ColorizeLines styles every line.
func ColorizeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Colorize(line)
	}
	return out
}
