package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/philipp01105/filelog/core"
)

// levelStyles holds the lipgloss style used for each level tag
type levelStyles map[core.Level]lipgloss.Style

func newLevelStyles(w io.Writer) levelStyles {
	r := lipgloss.NewRenderer(w)
	return levelStyles{
		core.CriticalLevel: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		core.ErrorLevel:    r.NewStyle().Foreground(lipgloss.Color("1")),
		core.InfoLevel:     r.NewStyle().Foreground(lipgloss.Color("4")),
		core.WarningLevel:  r.NewStyle().Foreground(lipgloss.Color("3")),
		core.DebugLevel:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// colorize styles the "[Level]" tag of every rendered line. Continuation
// lines of multi-line messages have no tag and are left alone.
func colorize(styles levelStyles, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = styles.line(line)
	}
	return out
}

func (s levelStyles) line(line string) string {
	start, end, level, ok := levelTag(line)
	if !ok {
		return line
	}
	style, ok := s[level]
	if !ok {
		return line
	}
	return line[:start] + style.Render(line[start:end]) + line[end:]
}

// levelTag locates the "[Level]" tag following the timestamp.
func levelTag(line string) (start, end int, level core.Level, ok bool) {
	if !strings.HasPrefix(line, "[") {
		return 0, 0, 0, false
	}
	i := strings.Index(line, "] [")
	if i < 0 {
		return 0, 0, 0, false
	}
	start = i + 2
	j := strings.IndexByte(line[start:], ']')
	if j < 0 {
		return 0, 0, 0, false
	}
	end = start + j + 1

	level, err := core.ParseLevel(line[start+1 : end-1])
	if err != nil {
		return 0, 0, 0, false
	}
	return start, end, level, true
}
