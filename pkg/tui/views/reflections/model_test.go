package reflections

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/boc321/momentum/pkg/reflection"
	"github.com/boc321/momentum/pkg/stats"
	"github.com/boc321/momentum/pkg/tui/theme"
)

func newTestModel() *Model {
	m := New(theme.Default())
	m.SetSize(100, 40)
	return m
}

func entries(n int) []*reflection.Reflection {
	now := time.Date(2026, time.March, 18, 15, 0, 0, 0, time.UTC)
	list := make([]*reflection.Reflection, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, reflection.New("Mental Fog",
			fmt.Sprintf("note %d", i), now.Add(time.Duration(i)*time.Minute)))
	}
	return list
}

func TestEmptyStateMessage(t *testing.T) {
	m := newTestModel()
	m.SetData(stats.ThinkingStats{}, 0, nil)
	if !strings.Contains(m.View(), "No Reflections Yet") {
		t.Fatalf("expected empty state message")
	}
}

func TestStatCardsShowSessionsAndMinutes(t *testing.T) {
	m := newTestModel()
	m.SetData(stats.ThinkingStats{Today: 2, ThisWeek: 3, ThisMonth: 4, AllTime: 5}, 3, nil)

	view := m.View()
	for _, want := range []string{"Today", "This Week", "This Month", "All Time", "50 min"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in tracker view", want)
		}
	}
}

func TestScrollingMovesTheWindow(t *testing.T) {
	m := newTestModel()
	m.SetData(stats.ThinkingStats{}, 0, entries(10))

	if !strings.Contains(m.View(), "note 0") {
		t.Fatalf("expected first entry visible")
	}

	for i := 0; i < 4; i++ {
		m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := m.View()
	if strings.Contains(view, "note 0") {
		t.Fatalf("expected first entry scrolled away")
	}
	if !strings.Contains(view, "note 4") {
		t.Fatalf("expected window to start at the fifth entry")
	}

	m.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	if m.offset != 0 {
		t.Fatalf("g should jump back to the top")
	}
}

func TestOffsetResetWhenDataShrinks(t *testing.T) {
	m := newTestModel()
	m.SetData(stats.ThinkingStats{}, 0, entries(10))
	for i := 0; i < 8; i++ {
		m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	m.SetData(stats.ThinkingStats{}, 0, entries(2))
	if m.offset != 0 {
		t.Fatalf("offset should reset when it falls outside the data")
	}
}
