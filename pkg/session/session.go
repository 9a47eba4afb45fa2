// Package session implements the linear state machine that runs one guided
// session: intro, three prompts, outro, then reflection capture. The engine
// is pure state over in-memory data; persistence belongs to the caller and
// is triggered through the single completion callback.
package session

import (
	"strings"

	"github.com/boc321/momentum/pkg/catalog"
)

// Step identifies the active stage of a session.
type Step int

// Session steps, in the only order they can occur.
const (
	StepIntro Step = iota
	StepPrompt
	StepOutro
	StepReflection
	StepCompleted
)

// CompleteFunc receives the trimmed reflection text when the session ends.
// ok is false when the user skipped or saved an empty note.
type CompleteFunc func(text string, ok bool)

// Engine walks a materialized session forward one step at a time. There are
// no backward transitions and no abort path; the completion callback fires
// exactly once.
type Engine struct {
	active      *catalog.ActiveSession
	step        Step
	promptIndex int
	onComplete  CompleteFunc
	fired       bool
}

// New starts an engine at the intro step.
func New(active *catalog.ActiveSession, onComplete CompleteFunc) *Engine {
	return &Engine{active: active, step: StepIntro, onComplete: onComplete}
}

// Step returns the current stage.
func (e *Engine) Step() Step { return e.step }

// PromptIndex returns the index of the active prompt. Only meaningful while
// Step() == StepPrompt.
func (e *Engine) PromptIndex() int { return e.promptIndex }

// Session exposes the materialized content the engine is walking.
func (e *Engine) Session() *catalog.ActiveSession { return e.active }

// Prompt returns the active prompt while in a prompt step.
func (e *Engine) Prompt() (catalog.Prompt, bool) {
	if e.step != StepPrompt || e.promptIndex >= len(e.active.Prompts) {
		return catalog.Prompt{}, false
	}
	return e.active.Prompts[e.promptIndex], true
}

// Advance moves forward exactly one step. It does nothing once the engine
// reaches the reflection step; leaving reflection requires Save or Skip.
func (e *Engine) Advance() {
	switch e.step {
	case StepIntro:
		e.step = StepPrompt
		e.promptIndex = 0
	case StepPrompt:
		if e.promptIndex < len(e.active.Prompts)-1 {
			e.promptIndex++
		} else {
			e.step = StepOutro
		}
	case StepOutro:
		e.step = StepReflection
	}
}

// Save ends the session carrying the draft text, trimmed of surrounding
// whitespace. A draft that trims to empty behaves exactly like Skip.
func (e *Engine) Save(draft string) {
	trimmed := strings.TrimSpace(draft)
	e.finish(trimmed, trimmed != "")
}

// Skip ends the session without a reflection.
func (e *Engine) Skip() {
	e.finish("", false)
}

func (e *Engine) finish(text string, ok bool) {
	if e.step != StepReflection || e.fired {
		return
	}
	e.fired = true
	e.step = StepCompleted
	if e.onComplete != nil {
		e.onComplete(text, ok)
	}
}
