package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// KeyValue renders aligned "label  value" lines.
func KeyValue(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}
	var b strings.Builder
	for i, p := range pairs {
		pad := width - lipgloss.Width(p[0])
		b.WriteString(Dim(p[0]))
		b.WriteString(strings.Repeat(" ", pad+2))
		b.WriteString(p[1])
		if i < len(pairs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// HumanTimestampFrom returns a human-friendly relative timestamp for t as
// seen at now.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Local().Format("Jan 2, 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Local().Format("Jan 2, 15:04")
	}
}

// TruncID returns the last 8 characters of an ID, dimmed. Lap ids are
// time-ordered UUIDs whose prefix barely changes within a session.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return StyleDim.Render(id)
}

// Percent renders a whole-number percentage.
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(v))
}

// SignedPercent renders a percentage with an explicit sign: "+12%", "-3%",
// "0%".
func SignedPercent(v float64) string {
	r := math.Round(v)
	if r > 0 {
		return fmt.Sprintf("+%.0f%%", r)
	}
	if r == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", r)
}
