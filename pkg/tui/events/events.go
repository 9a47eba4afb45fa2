// Package events defines the typed messages exchanged between the root
// model and its screens.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// Screen identifies a top-level screen.
type Screen string

// Screens. There is no navigation action targeting ScreenSession; it is
// entered only via category selection and left only via session completion.
const (
	ScreenHome        Screen = "home"
	ScreenSession     Screen = "session"
	ScreenReflections Screen = "reflections"
	ScreenAbout       Screen = "about"
)

// NavigateMsg asks the root model to show a screen.
type NavigateMsg struct {
	Screen Screen
}

// Describe renders the navigation request for logs.
func (m NavigateMsg) Describe() string {
	return fmt.Sprintf(`screen:%q`, m.Screen)
}

// NavigateCmd wraps NavigateMsg in a tea.Cmd.
func NavigateCmd(s Screen) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: s}
	}
}

// CategorySelectedMsg is emitted when the user activates a stuck point on
// the home grid.
type CategorySelectedMsg struct {
	ID string
}

// Describe renders the selection for logs.
func (m CategorySelectedMsg) Describe() string {
	return fmt.Sprintf(`id:%q`, m.ID)
}

// CategorySelectedCmd wraps CategorySelectedMsg in a tea.Cmd.
func CategorySelectedCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return CategorySelectedMsg{ID: id}
	}
}

// SessionCompletedMsg carries the session engine's completion callback
// payload up to the root model, which owns all persistence.
type SessionCompletedMsg struct {
	StuckPointTitle string
	Text            string
	HasText         bool
}

// Describe renders the completion for logs.
func (m SessionCompletedMsg) Describe() string {
	return fmt.Sprintf(`title:%q hasText:%v`, m.StuckPointTitle, m.HasText)
}

// SessionCompletedCmd wraps SessionCompletedMsg in a tea.Cmd.
func SessionCompletedCmd(title, text string, hasText bool) tea.Cmd {
	return func() tea.Msg {
		return SessionCompletedMsg{StuckPointTitle: title, Text: text, HasText: hasText}
	}
}

// FocusSubmittedMsg is emitted when the user submits a daily focus goal.
type FocusSubmittedMsg struct {
	Text string
}

// Describe renders the submission for logs.
func (m FocusSubmittedMsg) Describe() string {
	return fmt.Sprintf(`text:%q`, m.Text)
}

// FocusSubmittedCmd wraps FocusSubmittedMsg in a tea.Cmd.
func FocusSubmittedCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return FocusSubmittedMsg{Text: text}
	}
}
