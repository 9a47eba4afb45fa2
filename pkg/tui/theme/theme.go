package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header  HeaderTheme
	Card    CardTheme
	Stat    StatTheme
	Session SessionTheme
	Footer  FooterTheme
	Panel   PanelTheme
}

// HeaderTheme styles screen headings.
type HeaderTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
}

// CardTheme styles the stuck-point cards on the home grid.
type CardTheme struct {
	Frame    lipgloss.Style
	Selected lipgloss.Style
	Icon     lipgloss.Style
	Title    lipgloss.Style
}

// StatTheme styles the tracker stat cards.
type StatTheme struct {
	Frame lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
}

// SessionTheme styles the guided-session screen.
type SessionTheme struct {
	Title lipgloss.Style
	Timer lipgloss.Style
	Text  lipgloss.Style
	Hint  lipgloss.Style
}

// FooterTheme styles the bottom status/navigation bar.
type FooterTheme struct {
	Nav    lipgloss.Style
	Active lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels such as reflection entries.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Faint lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	teal := lipgloss.Color("37")
	gray := lipgloss.Color("245")
	dim := lipgloss.Color("241")

	return Theme{
		Header: HeaderTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(gray),
		},
		Card: CardTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 2),
			Selected: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(teal).
				Padding(0, 2),
			Icon:  lipgloss.NewStyle().Foreground(teal),
			Title: lipgloss.NewStyle().Bold(true),
		},
		Stat: StatTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Label: lipgloss.NewStyle().Foreground(gray),
			Value: lipgloss.NewStyle().Bold(true),
		},
		Session: SessionTheme{
			Title: lipgloss.NewStyle().Bold(true),
			Timer: lipgloss.NewStyle().Foreground(teal),
			Text:  lipgloss.NewStyle(),
			Hint:  lipgloss.NewStyle().Foreground(dim),
		},
		Footer: FooterTheme{
			Nav:    lipgloss.NewStyle().Foreground(dim),
			Active: lipgloss.NewStyle().Foreground(teal).Bold(true),
			Status: lipgloss.NewStyle().Foreground(gray),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Foreground(teal),
			Body:  lipgloss.NewStyle(),
			Faint: lipgloss.NewStyle().Foreground(dim),
		},
	}
}
