// Package timefmt renders millisecond durations for display, sharing and
// export summaries.
package timefmt

import (
	"fmt"
	"math"

	"github.com/alexanderramin/lapwatch/internal/domain"
)

type parts struct {
	hours, minutes, seconds, millis int64
}

func split(ms int64) parts {
	if ms < 0 {
		ms = 0
	}
	return parts{
		hours:   ms / 3_600_000,
		minutes: (ms % 3_600_000) / 60_000,
		seconds: (ms % 60_000) / 1000,
		millis:  ms % 1000,
	}
}

// Clock renders ms as a stopwatch face: MM:SS, MM:SS.cc or MM:SS.mmm
// depending on precision, with an HH: prefix from one hour up.
func Clock(ms int64, precision domain.Precision) string {
	p := split(ms)
	base := fmt.Sprintf("%02d:%02d", p.minutes, p.seconds)
	if p.hours > 0 {
		base = fmt.Sprintf("%02d:%s", p.hours, base)
	}
	switch precision {
	case domain.PrecisionSeconds:
		return base
	case domain.PrecisionMilliseconds:
		return fmt.Sprintf("%s.%03d", base, p.millis)
	default:
		return fmt.Sprintf("%s.%02d", base, p.millis/10)
	}
}

// Compact renders short durations as "12.34s" and longer ones as
// "3:04.56", counting minutes without an hour rollover.
func Compact(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60_000
	seconds := (ms % 60_000) / 1000
	cs := (ms % 1000) / 10
	if minutes > 0 {
		return fmt.Sprintf("%d:%02d.%02d", minutes, seconds, cs)
	}
	return fmt.Sprintf("%d.%02ds", seconds, cs)
}

// Human renders whole seconds as "1h 2m 3s", "2m 3s" or "3s".
func Human(ms int64) string {
	p := split(ms)
	switch {
	case p.hours > 0:
		return fmt.Sprintf("%dh %dm %ds", p.hours, p.minutes, p.seconds)
	case p.minutes > 0:
		return fmt.Sprintf("%dm %ds", p.minutes, p.seconds)
	default:
		return fmt.Sprintf("%ds", p.seconds)
	}
}

// Share renders ms as "m:ss.cc", the form used in share text.
func Share(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d:%02d.%02d", ms/60_000, (ms%60_000)/1000, (ms%1000)/10)
}

// RoundMs rounds a fractional millisecond value such as an average.
func RoundMs(ms float64) int64 {
	return int64(math.Round(ms))
}
