// Package about renders the static description of the app.
package about

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/boc321/momentum/pkg/stats"
	"github.com/boc321/momentum/pkg/tui/theme"
	"github.com/boc321/momentum/pkg/tui/ui"
)

var _ ui.Component = (*Model)(nil)

// Model is the about screen state.
type Model struct {
	width int
	theme theme.Theme
}

// New builds the about screen.
func New(th theme.Theme) *Model {
	return &Model{theme: th}
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component.
func (m *Model) Update(tea.Msg) (ui.Component, tea.Cmd) { return m, nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) { m.width = width }

// View implements ui.Component.
func (m *Model) View() string {
	wrap := m.width - 4
	if wrap > 72 {
		wrap = 72
	}
	if wrap <= 0 {
		wrap = 72
	}

	paragraphs := []string{
		"Momentum Moment is a pocket-sized thinking ritual. Pick the kind of " +
			"stuck you are feeling, and it walks you through a short guided " +
			"session built to get your mind moving again.",
		"Each session lasts about " +
			fmt.Sprintf("%d minutes", stats.SessionMinutes) + " and follows the same " +
			"arc: settle in, work through three short prompts, then wind down. " +
			"At the end you can capture a reflection, or simply close the " +
			"session and move on. Either way the session counts.",
		"The tracker keeps a local record of your sessions and reflections. " +
			"Nothing leaves your machine unless you configure the optional " +
			"advice collaborator.",
	}

	var b strings.Builder
	b.WriteString(m.theme.Header.Title.Render("About"))
	b.WriteString("\n\n")
	for i, p := range paragraphs {
		b.WriteString(wordwrap.String(p, wrap))
		if i < len(paragraphs)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
