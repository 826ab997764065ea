package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lapwatch/internal/domain"
	"github.com/alexanderramin/lapwatch/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors one theme renders with.
type Palette struct {
	Name   string
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

// Gruvbox-inspired palettes.
var (
	DarkPalette = Palette{
		Name:   "dark",
		Green:  lipgloss.Color("#8ec07c"),
		Yellow: lipgloss.Color("#fabd2f"),
		Red:    lipgloss.Color("#fb4934"),
		Blue:   lipgloss.Color("#83a598"),
		Purple: lipgloss.Color("#d3869b"),
		Dim:    lipgloss.Color("#928374"),
		Fg:     lipgloss.Color("#ebdbb2"),
		Header: lipgloss.Color("#fe8019"),
	}
	LightPalette = Palette{
		Name:   "light",
		Green:  lipgloss.Color("#427b58"),
		Yellow: lipgloss.Color("#b57614"),
		Red:    lipgloss.Color("#9d0006"),
		Blue:   lipgloss.Color("#076678"),
		Purple: lipgloss.Color("#8f3f71"),
		Dim:    lipgloss.Color("#7c6f64"),
		Fg:     lipgloss.Color("#3c3836"),
		Header: lipgloss.Color("#af3a03"),
	}
)

// PaletteFor resolves a theme setting. The system theme follows the
// terminal background.
func PaletteFor(theme domain.Theme, hasDarkBackground bool) Palette {
	switch theme {
	case domain.ThemeLight:
		return LightPalette
	case domain.ThemeDark:
		return DarkPalette
	default:
		if hasDarkBackground {
			return DarkPalette
		}
		return LightPalette
	}
}

// Active colors. UsePalette replaces them.
var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color
)

// Predefined lipgloss styles, rebuilt by UsePalette.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

var active Palette

func init() {
	UsePalette(DarkPalette)
}

// UsePalette switches every color and style in the package to p. It must be
// called from the goroutine that renders.
func UsePalette(p Palette) {
	active = p
	ColorGreen, ColorYellow, ColorRed, ColorBlue = p.Green, p.Yellow, p.Red, p.Blue
	ColorPurple, ColorDim, ColorFg, ColorHeader = p.Purple, p.Dim, p.Fg, p.Header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// ActivePalette returns the palette last passed to UsePalette.
func ActivePalette() Palette { return active }

// BadgeLabel returns a colored label for a lap classification, or "" for
// BadgeNone.
func BadgeLabel(b stats.Badge) string {
	switch b {
	case stats.BadgeBest:
		return StyleGreen.Render("★ best")
	case stats.BadgeWorst:
		return StyleRed.Render("▼ worst")
	case stats.BadgeFaster:
		return StyleBlue.Render("↑ faster")
	case stats.BadgeSlower:
		return StyleYellow.Render("↓ slower")
	default:
		return ""
	}
}

// TrendIndicator describes the lap in progress against the average.
func TrendIndicator(t stats.Trend) string {
	switch t {
	case stats.TrendFaster:
		return StyleGreen.Render("● faster than average")
	case stats.TrendSlower:
		return StyleYellow.Render("● slower than average")
	default:
		return ""
	}
}

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
