// Package home renders the landing screen: the stuck-point grid, the daily
// focus input, and any advice generated for the current focus.
package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/boc321/momentum/pkg/catalog"
	"github.com/boc321/momentum/pkg/store"
	"github.com/boc321/momentum/pkg/tui/events"
	"github.com/boc321/momentum/pkg/tui/theme"
	"github.com/boc321/momentum/pkg/tui/ui"
)

var _ ui.Component = (*Model)(nil)

// Model is the home screen state.
type Model struct {
	points []catalog.StuckPoint
	cursor int

	entering bool
	input    textinput.Model

	focus    store.DailyFocus
	hasFocus bool
	notice   string
	backdrop string

	width  int
	height int
	theme  theme.Theme
}

// New builds the home screen over the stuck-point catalog.
func New(th theme.Theme) *Model {
	ti := textinput.New()
	ti.Placeholder = "What do you want to focus on today?"
	ti.Prompt = "> "
	ti.CharLimit = 200

	return &Model{
		points: catalog.Categories(),
		input:  ti,
		theme:  th,
	}
}

// Entering reports whether the focus input is capturing keystrokes. The root
// model suspends navigation keys while this is true.
func (m *Model) Entering() bool { return m.entering }

// SetFocus shows the stored daily focus and its advice.
func (m *Model) SetFocus(f store.DailyFocus) {
	m.focus = f
	m.hasFocus = true
	m.notice = ""
}

// ClearFocus removes the focus panel, e.g. after the stored value expired.
func (m *Model) ClearFocus() {
	m.focus = store.DailyFocus{}
	m.hasFocus = false
}

// SetNotice displays a transient status line, typically a soft failure from
// the advice collaborator.
func (m *Model) SetNotice(text string) { m.notice = text }

// SetBackdrop records the generated backdrop image URL. Terminals cannot
// render the image itself, so the link is shown for the curious.
func (m *Model) SetBackdrop(url string) { m.backdrop = url }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if m.entering {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.entering {
		switch key.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			m.entering = false
			m.input.Blur()
			m.input.SetValue("")
			if text == "" {
				return m, nil
			}
			m.notice = "thinking..."
			return m, events.FocusSubmittedCmd(text)
		case "esc":
			m.entering = false
			m.input.Blur()
			m.input.SetValue("")
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		return m, cmd
	}

	switch key.String() {
	case "left", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "j":
		if m.cursor < len(m.points)-1 {
			m.cursor++
		}
	case "enter":
		return m, events.CategorySelectedCmd(m.points[m.cursor].ID)
	case "f":
		m.entering = true
		m.input.SetValue("")
		return m, tea.Batch(m.input.Focus(), textinput.Blink)
	}
	return m, nil
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 6
	if w > 60 {
		w = 60
	}
	if w > 0 {
		m.input.SetWidth(w)
	}
}

// View implements ui.Component.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	wrap := width - 4
	if wrap > 72 {
		wrap = 72
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render("Momentum Moment"))
	b.WriteString("\n")
	b.WriteString(m.theme.Header.Subtitle.Render("Where are you stuck right now?"))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n\n")
	b.WriteString(m.renderFocus(wrap))
	return b.String()
}

func (m *Model) renderGrid() string {
	cards := make([]string, 0, len(m.points))
	for i, p := range m.points {
		frame := m.theme.Card.Frame
		if i == m.cursor {
			frame = m.theme.Card.Selected
		}
		body := fmt.Sprintf("%s %s",
			m.theme.Card.Icon.Render(p.Icon),
			m.theme.Card.Title.Render(p.Title))
		cards = append(cards, frame.Render(body))
	}

	// Two rows keeps the cards readable on narrow terminals.
	split := (len(cards) + 1) / 2
	top := lipgloss.JoinHorizontal(lipgloss.Top, cards[:split]...)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[split:]...)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func (m *Model) renderFocus(wrap int) string {
	var b strings.Builder

	if m.entering {
		b.WriteString(m.theme.Panel.Title.Render("Daily Focus"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.theme.Panel.Faint.Render("enter submit · esc cancel"))
		return b.String()
	}

	if m.hasFocus {
		a := m.focus.Advice
		var p strings.Builder
		p.WriteString(m.theme.Panel.Title.Render(m.focus.Text))
		p.WriteString("\n\n")
		p.WriteString(m.theme.Panel.Body.Render(wordwrap.String("“"+a.Quote+"”", wrap-4)))
		p.WriteString("\n\n")
		p.WriteString(m.theme.Panel.Body.Render(wordwrap.String(a.Encouragement, wrap-4)))
		if len(a.Steps) > 0 {
			p.WriteString("\n")
			for i, s := range a.Steps {
				p.WriteString(fmt.Sprintf("\n%d. %s", i+1, s))
			}
		}
		b.WriteString(m.theme.Panel.Frame.Render(p.String()))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(m.theme.Footer.Status.Render(m.notice))
		b.WriteString("\n")
	}

	if !m.hasFocus && !m.entering {
		b.WriteString(m.theme.Panel.Faint.Render("press f to set a focus for today"))
		b.WriteString("\n")
	}

	if m.backdrop != "" {
		b.WriteString(m.theme.Panel.Faint.Render("backdrop: " + m.backdrop))
	}
	return b.String()
}
