// Package theme provides color themes and styling for the tuikit
// widgets.
package theme

import (
	"image/color"
	"log"
	"sort"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := ThemesDir(); err == nil {
		if _, err := LoadUserThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	ok := tint.SetTintID(themeName)
	if !ok {
		// Theme not found, fall back to default
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// AvailableThemes returns the sorted IDs of every registered theme,
// built-in and custom. Returns nil when theming is disabled.
func AvailableThemes() []string {
	if !enabled {
		return nil
	}
	ids := tint.TintIDs()
	sort.Strings(ids)
	return ids
}

// Fg returns the default foreground color.
func Fg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// Bg returns the default background color.
func Bg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// Accent returns the highlight color used for badges and the active
// selection.
func Accent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

// Muted returns the dimmed color used for placeholders and separators.
func Muted() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

// Warn returns the color for warning notifications.
func Warn() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

// Error returns the color for error notifications.
func Error() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

// Success returns the color for success notifications.
func Success() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cd00")
	}
	return t.Green
}

// RowStyle returns the style for an ordinary list row.
func RowStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Fg())
}

// PlaceholderStyle returns the style for the drag placeholder row, the
// dimmed slot the floating preview will land in.
func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Muted()).Faint(true)
}

// PreviewStyle returns the style for the floating drag preview row.
func PreviewStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Bg()).
		Background(Accent()).
		Bold(true)
}

// BadgeStyle returns the style for the right-aligned row badge.
func BadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Accent())
}

// StatusBarStyle returns the style for the bottom status bar.
func StatusBarStyle() lipgloss.Style {
	t := Current()
	bg := color.Color(lipgloss.Color("#303030"))
	if t != nil {
		bg = t.BrightBlack
	}
	return lipgloss.NewStyle().Foreground(Fg()).Background(bg)
}

// MediaBarStyle returns the style for the playback progress readout.
func MediaBarStyle() lipgloss.Style {
	t := Current()
	fg := color.Color(lipgloss.Color("#00cdcd"))
	if t != nil {
		fg = t.Cyan
	}
	return lipgloss.NewStyle().Foreground(fg)
}

// OverlayStyle returns the bordered style for modal overlays.
func OverlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent()).
		Padding(0, 1)
}

// NotificationStyle returns the style for a notification of the given
// kind: "info", "success", "warning" or "error".
func NotificationStyle(kind string) lipgloss.Style {
	var fg color.Color
	switch kind {
	case "error":
		fg = Error()
	case "warning":
		fg = Warn()
	case "success":
		fg = Success()
	default:
		fg = Accent()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Foreground(fg).
		Padding(0, 1)
}
