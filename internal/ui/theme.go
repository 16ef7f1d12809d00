package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Success    string
	Warning    string
	Danger     string

	SelectionBg   string
	SelectionText string
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Danger   lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
	Box      lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectionText)).
			Background(lipgloss.Color(t.SelectionBg)).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.Surface)).
			Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

var themes = []Theme{
	{
		Name:          "Dracula",
		Background:    "#282a36",
		Surface:       "#44475a",
		Text:          "#f8f8f2",
		Muted:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
		SelectionBg:   "#bd93f9",
		SelectionText: "#282a36",
	},
	{
		Name:          "Solarized",
		Background:    "#002b36",
		Surface:       "#073642",
		Text:          "#93a1a1",
		Muted:         "#586e75",
		Accent:        "#268bd2",
		Success:       "#859900",
		Warning:       "#b58900",
		Danger:        "#dc322f",
		SelectionBg:   "#268bd2",
		SelectionText: "#002b36",
	},
	{
		Name:          "Plain",
		Background:    "0",
		Surface:       "8",
		Text:          "15",
		Muted:         "7",
		Accent:        "12",
		Success:       "10",
		Warning:       "11",
		Danger:        "9",
		SelectionBg:   "12",
		SelectionText: "0",
	},
}

// GetTheme returns the named theme, falling back to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, wrapping.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
