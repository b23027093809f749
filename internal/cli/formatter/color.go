package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/linework/internal/contract"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Package styles, rebuilt by SetColorEnabled.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

func init() {
	SetColorEnabled(true)
}

// SetColorEnabled rebuilds the package styles, plain when disabled. Wired
// from main based on whether stdout is a terminal.
func SetColorEnabled(enabled bool) {
	if !enabled {
		plain := lipgloss.NewStyle()
		StyleGreen, StyleYellow, StyleRed, StyleBlue = plain, plain, plain, plain
		StyleDim, StyleFg, StyleHeader, StyleBold = plain, plain, plain, plain
		return
	}
	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// SeverityIndicator returns a colored marker such as "▲ warning".
func SeverityIndicator(s contract.Severity) string {
	switch s {
	case contract.SeverityWarning:
		return StyleYellow.Render("▲ warning")
	case contract.SeverityInfo:
		return StyleBlue.Render("● info")
	default:
		return StyleDim.Render("● " + string(s))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
