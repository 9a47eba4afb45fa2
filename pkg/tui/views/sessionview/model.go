// Package sessionview renders one guided session: intro, prompts with an
// advisory countdown, outro, and reflection capture.
package sessionview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/boc321/momentum/pkg/catalog"
	"github.com/boc321/momentum/pkg/session"
	"github.com/boc321/momentum/pkg/tui/events"
	"github.com/boc321/momentum/pkg/tui/theme"
	"github.com/boc321/momentum/pkg/tui/ui"
)

// Ensure Model satisfies the Component interface.
var _ ui.Component = (*Model)(nil)

type tickMsg time.Time

// Model drives the session screen around a session.Engine. The countdown is
// advisory display only; it never advances the session.
type Model struct {
	engine *session.Engine
	input  textarea.Model

	remaining     int // seconds left on the active prompt's advisory timer
	completed     bool
	completedText string
	completedOK   bool

	width  int
	height int
	theme  theme.Theme
}

// New builds the session screen for a materialized session.
func New(active *catalog.ActiveSession, th theme.Theme) *Model {
	ta := textarea.New()
	ta.Placeholder = "Jot down a quick note..."
	ta.CharLimit = 2000
	ta.SetWidth(60)
	ta.SetHeight(6)

	m := &Model{input: ta, theme: th}
	m.engine = session.New(active, func(text string, ok bool) {
		m.completed = true
		m.completedText = text
		m.completedOK = ok
	})
	return m
}

// Engine exposes the underlying state machine, mainly for tests.
func (m *Model) Engine() *session.Engine { return m.engine }

// Init starts the advisory countdown tick.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.engine.Step() == session.StepCompleted {
			return m, nil
		}
		if m.engine.Step() == session.StepPrompt && m.remaining > 0 {
			m.remaining--
		}
		return m, tick()

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.engine.Step() == session.StepReflection {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (ui.Component, tea.Cmd) {
	if m.engine.Step() == session.StepReflection {
		switch msg.String() {
		case "ctrl+s":
			m.engine.Save(m.input.Value())
			return m, m.completionCmd()
		case "esc":
			m.engine.Skip()
			return m, m.completionCmd()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "enter", " ":
		m.engine.Advance()
		if p, ok := m.engine.Prompt(); ok {
			m.remaining = int(p.Duration / time.Second)
		}
		if m.engine.Step() == session.StepReflection {
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m *Model) completionCmd() tea.Cmd {
	if !m.completed {
		return nil
	}
	return events.SessionCompletedCmd(
		m.engine.Session().StuckPointTitle, m.completedText, m.completedOK)
}

// SetSize stores the available viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 4
	if w > 72 {
		w = 72
	}
	if w > 0 {
		m.input.SetWidth(w)
	}
}

// View renders the active step.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	wrap := width - 4
	if wrap > 72 {
		wrap = 72
	}

	st := m.theme.Session
	active := m.engine.Session()
	var b strings.Builder

	switch m.engine.Step() {
	case session.StepIntro:
		b.WriteString(st.Title.Render("Let's Begin"))
		b.WriteString("\n\n")
		b.WriteString(st.Text.Render(wordwrap.String(active.Intro, wrap)))
		b.WriteString("\n\n")
		b.WriteString(st.Hint.Render("Enter start"))
	case session.StepPrompt:
		p, _ := m.engine.Prompt()
		b.WriteString(st.Title.Render(p.Title))
		b.WriteString("\n")
		b.WriteString(st.Timer.Render(formatTime(m.remaining)))
		b.WriteString("\n\n")
		b.WriteString(st.Text.Render(wordwrap.String(p.Text, wrap)))
		b.WriteString("\n\n")
		b.WriteString(st.Hint.Render("Enter next"))
	case session.StepOutro:
		b.WriteString(st.Title.Render("Session Complete"))
		b.WriteString("\n\n")
		b.WriteString(st.Text.Render(wordwrap.String(active.Outro, wrap)))
		b.WriteString("\n\n")
		b.WriteString(st.Hint.Render("Enter capture thoughts"))
	case session.StepReflection:
		b.WriteString(st.Title.Render("Capture Your Thoughts"))
		b.WriteString("\n\n")
		b.WriteString(st.Text.Render(wordwrap.String(
			"What came up for you during that session? What feels clearer now?", wrap)))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(st.Hint.Render("ctrl+s save & close · esc skip"))
	case session.StepCompleted:
		// The root model swaps screens on completion; nothing to draw.
	}
	return b.String()
}

func formatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
