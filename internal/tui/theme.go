package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Base     lipgloss.Style
	Border   lipgloss.Color
	Header   lipgloss.Style
	Item     lipgloss.Style
	DoneItem lipgloss.Style
	Focused  lipgloss.Style
	Dim      lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Badge    lipgloss.Style
	Today    lipgloss.Style
	Input    lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Border:   lipgloss.Color("63"),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DoneItem: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Underline(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
	},
	"dracula": {
		Name:     "Dracula",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Border:   lipgloss.Color("62"),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		DoneItem: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true).Underline(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
