// Package teaui hosts the Bubble Tea program for the momentum TUI.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/boc321/momentum/pkg/app"
	"github.com/boc321/momentum/pkg/catalog"
	"github.com/boc321/momentum/pkg/reflection"
	"github.com/boc321/momentum/pkg/stats"
	"github.com/boc321/momentum/pkg/store"
	"github.com/boc321/momentum/pkg/tui/events"
	"github.com/boc321/momentum/pkg/tui/theme"
	"github.com/boc321/momentum/pkg/tui/ui"
	aboutview "github.com/boc321/momentum/pkg/tui/views/about"
	homeview "github.com/boc321/momentum/pkg/tui/views/home"
	trackerview "github.com/boc321/momentum/pkg/tui/views/reflections"
	"github.com/boc321/momentum/pkg/tui/views/sessionview"
)

// Model contains UI state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc

	screen events.Screen

	home    *homeview.Model
	session *sessionview.Model
	tracker *trackerview.Model
	about   *aboutview.Model

	weekly        int
	backgroundURL string
	status        string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	termWidth  int
	termHeight int

	theme theme.Theme
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) *Model {
	th := theme.Default()
	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		svc:     svc,
		ctx:     ctx,
		cancel:  cancel,
		screen:  events.ScreenHome,
		home:    homeview.New(th),
		tracker: trackerview.New(th),
		about:   aboutview.New(th),
		theme:   th,
	}
}

// Init loads initial data.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadData(), m.loadBackground(), startWatchCmd(m.ctx, m.svc))
}

// messages
type errMsg struct{ err error }

type dataLoadedMsg struct {
	stats       stats.ThinkingStats
	weekly      int
	reflections []*reflection.Reflection
	focus       store.DailyFocus
	hasFocus    bool
}

type backgroundLoadedMsg struct {
	url string
	err error
}

type focusSavedMsg struct {
	focus store.DailyFocus
	err   error
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct{ event store.Event }

type watchStoppedMsg struct{}

func (m *Model) loadData() tea.Cmd {
	now := time.Now()
	return func() tea.Msg {
		st, err := m.svc.Stats(now)
		if err != nil {
			return errMsg{err}
		}
		weekly, err := m.svc.WeeklyCount(now)
		if err != nil {
			return errMsg{err}
		}
		refs, err := m.svc.Reflections()
		if err != nil {
			return errMsg{err}
		}
		focus, ok := m.svc.CurrentFocus(now)
		return dataLoadedMsg{
			stats:       st,
			weekly:      weekly,
			reflections: refs,
			focus:       focus,
			hasFocus:    ok,
		}
	}
}

func (m *Model) loadBackground() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		url, err := m.svc.Background(ctx, time.Now())
		return backgroundLoadedMsg{url: url, err: err}
	}
}

func (m *Model) saveFocus(text string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		focus, err := m.svc.SetFocus(ctx, text, time.Now())
		return focusSavedMsg{focus: focus, err: err}
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		return m, nil

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
		return m, m.updateActive(msg)

	case events.NavigateMsg:
		m.navigate(msg.Screen, &cmds)
		return m, tea.Batch(cmds...)

	case events.CategorySelectedMsg:
		active, ok := catalog.Materialize(msg.ID)
		if !ok {
			return m, nil
		}
		m.session = sessionview.New(active, m.theme)
		m.session.SetSize(m.contentWidth(), m.contentHeight())
		m.screen = events.ScreenSession
		return m, m.session.Init()

	case events.SessionCompletedMsg:
		if _, err := m.svc.CompleteSession(
			msg.StuckPointTitle, msg.Text, msg.HasText, time.Now()); err != nil {
			m.status = err.Error()
		}
		m.session = nil
		m.screen = events.ScreenHome
		return m, m.loadData()

	case events.FocusSubmittedMsg:
		return m, m.saveFocus(msg.Text)

	case dataLoadedMsg:
		m.weekly = msg.weekly
		m.tracker.SetData(msg.stats, msg.weekly, msg.reflections)
		if msg.hasFocus {
			m.home.SetFocus(msg.focus)
		} else {
			m.home.ClearFocus()
		}
		return m, nil

	case backgroundLoadedMsg:
		// A placeholder URL still arrives alongside the error; keep it.
		m.backgroundURL = msg.url
		m.home.SetBackdrop(msg.url)
		if msg.err != nil && !errors.Is(msg.err, app.ErrNoGenerator) {
			m.home.SetNotice("could not load a beautiful background for you, using a fallback")
		}
		return m, nil

	case focusSavedMsg:
		if msg.err != nil {
			m.home.SetNotice("could not get advice right now, please try again later")
			return m, nil
		}
		m.home.SetFocus(msg.focus)
		return m, nil

	case errMsg:
		m.status = msg.err.Error()
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()

	case watchEventMsg:
		return m, tea.Batch(m.loadData(), m.waitForWatch())

	case watchStoppedMsg:
		m.watchCh = nil
		return m, nil
	}

	return m, m.updateActive(msg)
}

// handleKey routes global keys; everything else falls through to the active
// screen. Navigation is suspended while a session is running so the only way
// out of a session is finishing it.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		m.quit()
		return tea.Quit, true
	}

	if m.screen == events.ScreenSession {
		return nil, false
	}
	if m.screen == events.ScreenHome && m.home.Entering() {
		return nil, false
	}

	switch msg.String() {
	case "q":
		m.quit()
		return tea.Quit, true
	case "h":
		return events.NavigateCmd(events.ScreenHome), true
	case "r":
		return events.NavigateCmd(events.ScreenReflections), true
	case "a":
		return events.NavigateCmd(events.ScreenAbout), true
	}
	return nil, false
}

func (m *Model) quit() {
	m.stopWatch()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) navigate(to events.Screen, cmds *[]tea.Cmd) {
	if m.screen == events.ScreenSession {
		return
	}
	m.screen = to
	if to == events.ScreenReflections {
		*cmds = append(*cmds, m.loadData())
	}
}

func (m *Model) active() ui.Component {
	switch m.screen {
	case events.ScreenSession:
		if m.session != nil {
			return m.session
		}
		return m.home
	case events.ScreenReflections:
		return m.tracker
	case events.ScreenAbout:
		return m.about
	default:
		return m.home
	}
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	c, cmd := m.active().Update(msg)
	switch m.screen {
	case events.ScreenSession:
		if s, ok := c.(*sessionview.Model); ok {
			m.session = s
		}
	case events.ScreenReflections:
		if t, ok := c.(*trackerview.Model); ok {
			m.tracker = t
		}
	case events.ScreenAbout:
		if a, ok := c.(*aboutview.Model); ok {
			m.about = a
		}
	default:
		if h, ok := c.(*homeview.Model); ok {
			m.home = h
		}
	}
	return cmd
}

func (m *Model) contentWidth() int {
	if m.termWidth <= 0 {
		return 80
	}
	return m.termWidth
}

func (m *Model) contentHeight() int {
	if m.termHeight <= 0 {
		return 24
	}
	h := m.termHeight - 2 // footer
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) applySizes() {
	w, h := m.contentWidth(), m.contentHeight()
	m.home.SetSize(w, h)
	m.tracker.SetSize(w, h)
	m.about.SetSize(w, h)
	if m.session != nil {
		m.session.SetSize(w, h)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.active().View())
	b.WriteString("\n\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *Model) footer() string {
	if m.screen == events.ScreenSession {
		return m.theme.Footer.Nav.Render("finish the session to return home")
	}

	nav := []struct {
		key    string
		label  string
		screen events.Screen
	}{
		{"h", "home", events.ScreenHome},
		{"r", "reflections", events.ScreenReflections},
		{"a", "about", events.ScreenAbout},
	}

	parts := make([]string, 0, len(nav)+2)
	for _, n := range nav {
		label := n.key + " " + n.label
		if m.screen == n.screen {
			parts = append(parts, m.theme.Footer.Active.Render(label))
		} else {
			parts = append(parts, m.theme.Footer.Nav.Render(label))
		}
	}
	parts = append(parts, m.theme.Footer.Nav.Render("q quit"))
	if m.screen == events.ScreenHome {
		parts = append(parts, m.theme.Footer.Status.Render(
			fmt.Sprintf("%d Momentum Moments this week", m.weekly)))
	}
	if m.status != "" {
		parts = append(parts, m.theme.Footer.Error.Render(m.status))
	}
	return strings.Join(parts, m.theme.Footer.Nav.Render(" · "))
}

// Run starts the full-screen program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
