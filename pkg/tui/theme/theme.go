package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the dashboard.
type Theme struct {
	Tabs   TabTheme
	Panel  PanelTheme
	Footer FooterTheme
}

// TabTheme styles the screen switcher across the top.
type TabTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Gap      lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Faint lipgloss.Style
	Label lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Notice lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	tab := lipgloss.NewStyle().Padding(0, 2)
	return Theme{
		Tabs: TabTheme{
			Active:   tab.Copy().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#1e40af")),
			Inactive: tab.Copy().Foreground(lipgloss.Color("244")),
			Gap:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Underline(true),
			Faint: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Italic(true),
		},
	}
}

// Badge renders label in the hex color.
func Badge(label, hex string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex)).Render(label)
}
