package home

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/boc321/momentum/pkg/advice"
	"github.com/boc321/momentum/pkg/catalog"
	"github.com/boc321/momentum/pkg/store"
	"github.com/boc321/momentum/pkg/tui/events"
	"github.com/boc321/momentum/pkg/tui/theme"
)

func newTestModel() *Model {
	m := New(theme.Default())
	m.SetSize(100, 40)
	return m
}

func press(t *testing.T, m *Model, key tea.KeyPressMsg) tea.Cmd {
	t.Helper()
	c, cmd := m.Update(key)
	if _, ok := c.(*Model); !ok {
		t.Fatalf("update returned unexpected component type %T", c)
	}
	return cmd
}

func TestEnterSelectsCategoryUnderCursor(t *testing.T) {
	m := newTestModel()

	press(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
	cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a selection command")
	}
	msg, ok := cmd().(events.CategorySelectedMsg)
	if !ok {
		t.Fatalf("expected CategorySelectedMsg")
	}
	if want := catalog.Categories()[1].ID; msg.ID != want {
		t.Fatalf("expected %q, got %q", want, msg.ID)
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m := newTestModel()

	press(t, m, tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.cursor != 0 {
		t.Fatalf("cursor should not go below zero")
	}
	for i := 0; i < 20; i++ {
		press(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if m.cursor != len(m.points)-1 {
		t.Fatalf("cursor should stop at the last card, got %d", m.cursor)
	}
}

func TestFocusInputSubmits(t *testing.T) {
	m := newTestModel()

	press(t, m, tea.KeyPressMsg{Code: 'f', Text: "f"})
	if !m.Entering() {
		t.Fatalf("expected focus input to be active")
	}

	m.input.SetValue("  finish the report  ")
	cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a submit command")
	}
	msg, ok := cmd().(events.FocusSubmittedMsg)
	if !ok {
		t.Fatalf("expected FocusSubmittedMsg")
	}
	if msg.Text != "finish the report" {
		t.Fatalf("expected trimmed focus text, got %q", msg.Text)
	}
	if m.Entering() {
		t.Fatalf("input should close after submit")
	}
}

func TestBlankFocusSubmitIsNoop(t *testing.T) {
	m := newTestModel()

	press(t, m, tea.KeyPressMsg{Code: 'f', Text: "f"})
	m.input.SetValue("   ")
	if cmd := press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Fatalf("blank focus should not submit")
	}
	if m.Entering() {
		t.Fatalf("input should close on blank submit")
	}
}

func TestEscapeCancelsFocusInput(t *testing.T) {
	m := newTestModel()

	press(t, m, tea.KeyPressMsg{Code: 'f', Text: "f"})
	m.input.SetValue("half typed")
	press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.Entering() {
		t.Fatalf("esc should cancel the input")
	}
	if m.input.Value() != "" {
		t.Fatalf("cancelled input should be cleared")
	}
}

func TestViewShowsAdvicePanel(t *testing.T) {
	m := newTestModel()
	m.SetFocus(store.DailyFocus{
		Text: "write the intro",
		Advice: advice.Advice{
			Quote:         "Start before you are ready.",
			Encouragement: "One paragraph is enough.",
			Steps:         []string{"open the doc", "write one line"},
		},
	})

	view := m.View()
	for _, want := range []string{
		"write the intro",
		"Start before you are ready.",
		"1. open the doc",
		"2. write one line",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in home view", want)
		}
	}
}

func TestViewListsAllCategories(t *testing.T) {
	m := newTestModel()
	view := m.View()
	for _, p := range catalog.Categories() {
		if !strings.Contains(view, p.Title) {
			t.Fatalf("expected category %q in home view", p.Title)
		}
	}
}
