package session

import (
	"testing"
	"time"

	"github.com/boc321/momentum/pkg/catalog"
)

func testSession() *catalog.ActiveSession {
	return &catalog.ActiveSession{
		StuckPointTitle: "Mental Fog",
		Intro:           "intro",
		Prompts: []catalog.Prompt{
			{Title: "Entry", Text: "one", Duration: 2 * time.Minute},
			{Title: "Unblocker", Text: "two", Duration: 3 * time.Minute},
			{Title: "Momentum", Text: "three", Duration: 2 * time.Minute},
		},
		Outro: "outro",
	}
}

func TestAdvanceWalksForwardOnly(t *testing.T) {
	e := New(testSession(), nil)
	if e.Step() != StepIntro {
		t.Fatalf("expected intro start, got %v", e.Step())
	}

	e.Advance()
	if e.Step() != StepPrompt || e.PromptIndex() != 0 {
		t.Fatalf("expected prompt 0, got step %v index %d", e.Step(), e.PromptIndex())
	}
	e.Advance()
	e.Advance()
	if e.Step() != StepPrompt || e.PromptIndex() != 2 {
		t.Fatalf("expected prompt 2, got step %v index %d", e.Step(), e.PromptIndex())
	}

	// The last prompt always advances to outro, never to an earlier prompt.
	e.Advance()
	if e.Step() != StepOutro {
		t.Fatalf("expected outro after last prompt, got %v", e.Step())
	}
	e.Advance()
	if e.Step() != StepReflection {
		t.Fatalf("expected reflection, got %v", e.Step())
	}

	// Advance has no effect on the reflection step.
	e.Advance()
	if e.Step() != StepReflection {
		t.Fatalf("advance should be a no-op during reflection, got %v", e.Step())
	}
}

func TestPromptAccessor(t *testing.T) {
	e := New(testSession(), nil)
	if _, ok := e.Prompt(); ok {
		t.Fatalf("no prompt expected during intro")
	}
	e.Advance()
	p, ok := e.Prompt()
	if !ok || p.Text != "one" {
		t.Fatalf("expected first prompt, got %v %v", p, ok)
	}
}

func toReflection(e *Engine) {
	for i := 0; i < 5; i++ {
		e.Advance()
	}
}

func TestSaveCarriesTrimmedText(t *testing.T) {
	var gotText string
	var gotOK bool
	calls := 0
	e := New(testSession(), func(text string, ok bool) {
		gotText, gotOK = text, ok
		calls++
	})
	toReflection(e)
	e.Save("  a clear thought  ")
	if calls != 1 {
		t.Fatalf("expected exactly one callback, got %d", calls)
	}
	if !gotOK || gotText != "a clear thought" {
		t.Fatalf("expected trimmed text, got %q ok=%v", gotText, gotOK)
	}
	if e.Step() != StepCompleted {
		t.Fatalf("expected completed, got %v", e.Step())
	}
}

func TestSaveWhitespaceBehavesLikeSkip(t *testing.T) {
	var gotOK bool
	calls := 0
	e := New(testSession(), func(text string, ok bool) {
		gotOK = ok
		calls++
	})
	toReflection(e)
	e.Save("  ")
	if calls != 1 {
		t.Fatalf("expected exactly one callback, got %d", calls)
	}
	if gotOK {
		t.Fatalf("whitespace-only save must behave like skip")
	}
}

func TestSkipFiresOnce(t *testing.T) {
	calls := 0
	e := New(testSession(), func(string, bool) { calls++ })
	toReflection(e)
	e.Skip()
	e.Skip()
	e.Save("late")
	if calls != 1 {
		t.Fatalf("expected exactly one callback, got %d", calls)
	}
}

func TestExitActionsOnlyValidFromReflection(t *testing.T) {
	calls := 0
	e := New(testSession(), func(string, bool) { calls++ })
	e.Save("early")
	e.Skip()
	if calls != 0 {
		t.Fatalf("no callback expected before reflection, got %d", calls)
	}
	if e.Step() != StepIntro {
		t.Fatalf("expected engine still at intro, got %v", e.Step())
	}
}
