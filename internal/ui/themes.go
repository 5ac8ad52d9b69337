package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color theme for the form
type Theme struct {
	Name string

	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	// UI colors
	Border   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Selected lipgloss.AdaptiveColor
}

// buildTheme creates a theme with the given colors
func buildTheme(name string, primary, secondary, success, warning, errorColor, border, muted, selected [2]string) Theme {
	return Theme{
		Name:      name,
		Primary:   lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Secondary: lipgloss.AdaptiveColor{Light: secondary[0], Dark: secondary[1]},
		Success:   lipgloss.AdaptiveColor{Light: success[0], Dark: success[1]},
		Warning:   lipgloss.AdaptiveColor{Light: warning[0], Dark: warning[1]},
		Error:     lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Border:    lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Muted:     lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
		Selected:  lipgloss.AdaptiveColor{Light: selected[0], Dark: selected[1]},
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#1E40AF", "#3B82F6"}, [2]string{"#6B7280", "#9CA3AF"},
		[2]string{"#059669", "#10B981"}, [2]string{"#D97706", "#F59E0B"},
		[2]string{"#DC2626", "#EF4444"}, [2]string{"#D1D5DB", "#374151"},
		[2]string{"#6B7280", "#9CA3AF"}, [2]string{"#DBEAFE", "#1E3A8A"})

	DarkTheme = buildTheme("dark",
		[2]string{"#60A5FA", "#60A5FA"}, [2]string{"#9CA3AF", "#9CA3AF"},
		[2]string{"#34D399", "#34D399"}, [2]string{"#FBBF24", "#FBBF24"},
		[2]string{"#F87171", "#F87171"}, [2]string{"#374151", "#374151"},
		[2]string{"#9CA3AF", "#9CA3AF"}, [2]string{"#1E3A8A", "#1E3A8A"})

	LightTheme = buildTheme("light",
		[2]string{"#1E40AF", "#1E40AF"}, [2]string{"#6B7280", "#6B7280"},
		[2]string{"#059669", "#059669"}, [2]string{"#D97706", "#D97706"},
		[2]string{"#DC2626", "#DC2626"}, [2]string{"#D1D5DB", "#D1D5DB"},
		[2]string{"#6B7280", "#6B7280"}, [2]string{"#DBEAFE", "#DBEAFE"})
)

// Current active theme
var currentTheme = DefaultTheme

// GetTheme returns the current active theme
func GetTheme() Theme {
	return currentTheme
}

// SetThemeByName sets the theme by name
func SetThemeByName(name string) bool {
	switch name {
	case "default":
		currentTheme = DefaultTheme
		return true
	case "dark":
		currentTheme = DarkTheme
		return true
	case "light":
		currentTheme = LightTheme
		return true
	default:
		return false
	}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "dark", "light"}
}

// Styles contains all the styled components
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Label    lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style
	Box      lipgloss.Style
	Toast    lipgloss.Style
}

// GetStyles derives the style set from the current theme
func GetStyles() *Styles {
	theme := GetTheme()

	return &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(theme.Selected).
			Foreground(theme.Primary).
			Bold(true),

		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),

		Toast: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
	}
}
