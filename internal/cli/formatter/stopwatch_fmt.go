package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/stats"
	"github.com/alexanderramin/lapwatch/internal/timefmt"
	"github.com/charmbracelet/lipgloss"
)

// StatusPill returns the run state of the stopwatch.
func StatusPill(running bool, elapsedMs int64) string {
	switch {
	case running:
		return StyleGreen.Render("● RUNNING")
	case elapsedMs > 0:
		return StyleYellow.Render("‖ PAUSED")
	default:
		return StyleDim.Render("○ READY")
	}
}

// FormatClockFace renders the main time display with the current lap and
// the progress through the running minute underneath.
func FormatClockFace(sum stats.Summary, precision domain.Precision) string {
	face := lipgloss.NewStyle().
		Foreground(ColorFg).
		Bold(true).
		Render(timefmt.Clock(sum.TotalMs, precision))

	lines := []string{
		face,
		StatusPill(sum.Running, sum.TotalMs),
	}
	if sum.TotalLaps > 0 {
		current := fmt.Sprintf("Lap %d  %s", sum.TotalLaps+1, timefmt.Clock(sum.CurrentLapMs, precision))
		if trend := TrendIndicator(sum.CurrentLapTrend); trend != "" {
			current += "  " + trend
		}
		lines = append(lines, "", current)
	}
	lines = append(lines, "", RenderCompactBar(sum.ProgressToMinute/100, 30))
	return strings.Join(lines, "\n")
}

// FormatLapTable lists laps newest first with their classification.
func FormatLapTable(laps []domain.Lap, precision domain.Precision) string {
	if len(laps) == 0 {
		return Dim("No laps yet. Press l while running to record one.")
	}
	rows := make([][]string, 0, len(laps))
	for i := len(laps) - 1; i >= 0; i-- {
		l := laps[i]
		rows = append(rows, []string{
			strconv.Itoa(l.Number),
			timefmt.Clock(l.DurationMs, precision),
			timefmt.Clock(l.CumulativeMs, precision),
			BadgeLabel(stats.Classify(l, laps)),
		})
	}
	return RenderTable([]string{"#", "LAP", "TOTAL", ""}, rows, AlignRight(0, 1, 2))
}

// FormatStats renders the statistics pane.
func FormatStats(sum stats.Summary, precision domain.Precision, now time.Time) string {
	pairs := [][2]string{
		{"Total time", timefmt.Clock(sum.TotalMs, precision)},
		{"Laps", strconv.Itoa(sum.TotalLaps)},
	}
	if sum.SessionStart != nil {
		pairs = append(pairs,
			[2]string{"Started", HumanTimestampFrom(*sum.SessionStart, now)},
			[2]string{"Session", timefmt.Human(sum.SessionDuration.Milliseconds())},
		)
	}
	if sum.TotalLaps == 0 {
		return KeyValue(pairs) + "\n\n" + Dim("Record at least one lap to see lap statistics.")
	}

	if sum.BestLap != nil {
		pairs = append(pairs, [2]string{"Best lap", lapRef(*sum.BestLap, precision, StyleGreen)})
	}
	if sum.WorstLap != nil {
		pairs = append(pairs, [2]string{"Worst lap", lapRef(*sum.WorstLap, precision, StyleRed)})
	}
	if sum.AverageMs != nil {
		pairs = append(pairs, [2]string{"Average", timefmt.Clock(timefmt.RoundMs(*sum.AverageMs), precision)})
	}
	if sum.Consistency != nil {
		pairs = append(pairs, [2]string{"Consistency", Percent(*sum.Consistency)})
	}
	if sum.Pace != nil {
		pairs = append(pairs, [2]string{"Pace", formatPace(*sum.Pace)})
	}
	return KeyValue(pairs)
}

func lapRef(l domain.Lap, precision domain.Precision, style lipgloss.Style) string {
	return style.Render(timefmt.Clock(l.DurationMs, precision)) + Dim(fmt.Sprintf("  (lap %d)", l.Number))
}

func formatPace(p float64) string {
	label := SignedPercent(p)
	switch {
	case p > 0:
		return StyleGreen.Render(label) + Dim("  recent laps faster")
	case p < 0:
		return StyleYellow.Render(label) + Dim("  recent laps slower")
	default:
		return label + Dim("  steady")
	}
}

// FormatSessionReport is the plain-terminal rendering of a whole session
// used by the headless commands.
func FormatSessionReport(state domain.SessionState, precision domain.Precision, now time.Time) string {
	sum := stats.Summarize(state, now)
	var b strings.Builder
	b.WriteString(Header("Session"))
	b.WriteString("\n")
	b.WriteString(FormatStats(sum, precision, now))
	b.WriteString("\n\n")
	b.WriteString(Header("Laps"))
	b.WriteString("\n")
	b.WriteString(FormatLapTable(state.Laps, precision))
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatSettings renders settings as aligned key/value lines.
func FormatSettings(s domain.Settings) string {
	return KeyValue([][2]string{
		{"Sound", onOff(s.SoundEnabled)},
		{"Precision", string(s.Precision)},
		{"Theme", string(s.Theme)},
		{"Auto-lap", onOff(s.AutoLap)},
		{"Vibration", onOff(s.Vibration)},
	})
}

func onOff(v bool) string {
	if v {
		return StyleGreen.Render("on")
	}
	return StyleDim.Render("off")
}
