// Package reflections renders the thinking tracker: stat cards over the
// saved reflection history.
package reflections

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/boc321/momentum/pkg/reflection"
	"github.com/boc321/momentum/pkg/stats"
	"github.com/boc321/momentum/pkg/tui/theme"
	"github.com/boc321/momentum/pkg/tui/ui"
)

var _ ui.Component = (*Model)(nil)

// Model is the tracker screen state.
type Model struct {
	stats   stats.ThinkingStats
	weekly  int
	entries []*reflection.Reflection
	offset  int

	width  int
	height int
	theme  theme.Theme
}

// New builds an empty tracker screen; call SetData before showing it.
func New(th theme.Theme) *Model {
	return &Model{theme: th}
}

// SetData replaces the stats and history shown on the screen.
func (m *Model) SetData(s stats.ThinkingStats, weekly int, entries []*reflection.Reflection) {
	m.stats = s
	m.weekly = weekly
	m.entries = entries
	if m.offset > len(entries)-1 {
		m.offset = 0
	}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}
	case "down", "j":
		if m.offset < len(m.entries)-1 {
			m.offset++
		}
	case "g":
		m.offset = 0
	}
	return m, nil
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View implements ui.Component.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	wrap := width - 8
	if wrap > 72 {
		wrap = 72
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render("Thinking Tracker"))
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Subtitle.Render(
		fmt.Sprintf("%d Momentum Moments in the last 7 days", m.weekly)))
	b.WriteString("\n\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n\n")
	b.WriteString(m.renderHistory(wrap))
	return b.String()
}

func (m *Model) renderStats() string {
	cards := []struct {
		label    string
		sessions int
	}{
		{"Today", m.stats.Today},
		{"This Week", m.stats.ThisWeek},
		{"This Month", m.stats.ThisMonth},
		{"All Time", m.stats.AllTime},
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := fmt.Sprintf("%s\n%s\n%s",
			m.theme.Stat.Label.Render(c.label),
			m.theme.Stat.Value.Render(fmt.Sprintf("%d", c.sessions)),
			m.theme.Stat.Label.Render(fmt.Sprintf("%d min", c.sessions*stats.SessionMinutes)))
		rendered = append(rendered, m.theme.Stat.Frame.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderHistory(wrap int) string {
	if len(m.entries) == 0 {
		return m.theme.Panel.Faint.Render(
			"No Reflections Yet. Complete a session and save a note to see it here.")
	}

	visible := 3
	if m.height > 30 {
		visible = 5
	}
	end := m.offset + visible
	if end > len(m.entries) {
		end = len(m.entries)
	}

	var b strings.Builder
	for i, r := range m.entries[m.offset:end] {
		var p strings.Builder
		p.WriteString(m.theme.Panel.Title.Render(r.StuckPointTitle))
		p.WriteString("  ")
		p.WriteString(m.theme.Panel.Faint.Render(r.Date))
		p.WriteString("\n")
		p.WriteString(m.theme.Panel.Body.Render(wordwrap.String(r.Text, wrap)))
		b.WriteString(m.theme.Panel.Frame.Render(p.String()))
		if i < end-m.offset-1 {
			b.WriteString("\n")
		}
	}
	if end < len(m.entries) {
		b.WriteString("\n")
		b.WriteString(m.theme.Panel.Faint.Render(
			fmt.Sprintf("%d more · j/k scroll", len(m.entries)-end)))
	}
	return b.String()
}
