package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boc321/momentum/pkg/advice"
	"github.com/boc321/momentum/pkg/reflection"
	"github.com/boc321/momentum/pkg/store"
)

type memoryPersistence struct {
	reflections []*reflection.Reflection
	completions []int64
	focus       *store.DailyFocus
	background  *store.Background
}

func (m *memoryPersistence) Reflections() []*reflection.Reflection {
	return append([]*reflection.Reflection{}, m.reflections...)
}

func (m *memoryPersistence) SaveReflections(list []*reflection.Reflection) error {
	m.reflections = append([]*reflection.Reflection{}, list...)
	return nil
}

func (m *memoryPersistence) Completions() []int64 {
	return append([]int64{}, m.completions...)
}

func (m *memoryPersistence) SaveCompletions(list []int64) error {
	m.completions = append([]int64{}, list...)
	return nil
}

func (m *memoryPersistence) DailyFocus(now time.Time) (store.DailyFocus, bool) {
	if m.focus == nil {
		return store.DailyFocus{}, false
	}
	then := time.UnixMilli(m.focus.GeneratedAt)
	if then.Local().Format("2006-01-02") != now.Local().Format("2006-01-02") {
		m.focus = nil
		return store.DailyFocus{}, false
	}
	return *m.focus, true
}

func (m *memoryPersistence) SaveDailyFocus(f store.DailyFocus) error {
	m.focus = &f
	return nil
}

func (m *memoryPersistence) ClearDailyFocus() { m.focus = nil }

func (m *memoryPersistence) Background() (store.Background, bool) {
	if m.background == nil {
		return store.Background{}, false
	}
	return *m.background, true
}

func (m *memoryPersistence) SaveBackground(b store.Background) error {
	m.background = &b
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

type fakeGenerator struct {
	backgrounds int
	advices     int
	failWith    error
	advice      advice.Advice
	imageURL    string
}

func (g *fakeGenerator) GenerateBackground(_ context.Context, theme string) (string, error) {
	g.backgrounds++
	if g.failWith != nil {
		return "", g.failWith
	}
	return g.imageURL, nil
}

func (g *fakeGenerator) GetAdvice(_ context.Context, focus string) (*advice.Advice, error) {
	g.advices++
	if g.failWith != nil {
		return nil, g.failWith
	}
	a := g.advice
	return &a, nil
}

var now = time.Date(2026, time.March, 18, 15, 0, 0, 0, time.UTC)

func TestCompleteSessionWithText(t *testing.T) {
	mp := &memoryPersistence{}
	svc := &Service{Persistence: mp}

	r, err := svc.CompleteSession("Mental Fog", "a clear thought", true, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r == nil || r.Text != "a clear thought" {
		t.Fatalf("unexpected reflection: %+v", r)
	}
	if len(mp.reflections) != 1 || len(mp.completions) != 1 {
		t.Fatalf("expected 1 reflection and 1 completion, got %d/%d",
			len(mp.reflections), len(mp.completions))
	}
	if mp.completions[0] != now.UnixMilli() {
		t.Fatalf("unexpected completion stamp: %d", mp.completions[0])
	}
}

func TestCompleteSessionPrependsNewest(t *testing.T) {
	mp := &memoryPersistence{}
	svc := &Service{Persistence: mp}

	if _, err := svc.CompleteSession("Mental Fog", "first", true, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CompleteSession("Too Many Options", "second", true, now.Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mp.reflections[0].Text != "second" || mp.reflections[1].Text != "first" {
		t.Fatalf("expected newest first, got %q then %q",
			mp.reflections[0].Text, mp.reflections[1].Text)
	}
}

func TestCompleteSessionSkipStillCounts(t *testing.T) {
	mp := &memoryPersistence{}
	svc := &Service{Persistence: mp}

	r, err := svc.CompleteSession("Mental Fog", "", false, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != nil {
		t.Fatalf("no reflection expected on skip, got %+v", r)
	}
	if len(mp.reflections) != 0 {
		t.Fatalf("expected no reflections, got %d", len(mp.reflections))
	}
	if len(mp.completions) != 1 {
		t.Fatalf("skip must still append a completion, got %d", len(mp.completions))
	}
}

func TestBackgroundUsesFreshCache(t *testing.T) {
	mp := &memoryPersistence{background: &store.Background{
		URL:       "https://img.example/cached.png",
		Timestamp: now.Add(-30 * time.Minute).UnixMilli(),
	}}
	gen := &fakeGenerator{imageURL: "https://img.example/new.png"}
	svc := &Service{Persistence: mp, Generator: gen}

	url, err := svc.Background(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://img.example/cached.png" {
		t.Fatalf("expected cached url, got %s", url)
	}
	if gen.backgrounds != 0 {
		t.Fatalf("no generation request expected for a fresh cache, got %d", gen.backgrounds)
	}
}

func TestBackgroundRegeneratesWhenStale(t *testing.T) {
	mp := &memoryPersistence{background: &store.Background{
		URL:       "https://img.example/old.png",
		Timestamp: now.Add(-2 * time.Hour).UnixMilli(),
	}}
	gen := &fakeGenerator{imageURL: "https://img.example/new.png"}
	svc := &Service{Persistence: mp, Generator: gen}

	url, err := svc.Background(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://img.example/new.png" {
		t.Fatalf("expected regenerated url, got %s", url)
	}
	if mp.background.Timestamp != now.UnixMilli() {
		t.Fatalf("expected cache stamp refreshed, got %d", mp.background.Timestamp)
	}
}

func TestBackgroundFallsBackOnFailure(t *testing.T) {
	gen := &fakeGenerator{failWith: advice.ErrProvider}
	svc := &Service{Persistence: &memoryPersistence{}, Generator: gen}

	url, err := svc.Background(context.Background(), now)
	if !errors.Is(err, advice.ErrProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if url != advice.PlaceholderImageURL {
		t.Fatalf("expected placeholder fallback, got %s", url)
	}
}

func TestSetFocusPersistsOnSuccess(t *testing.T) {
	mp := &memoryPersistence{}
	gen := &fakeGenerator{advice: advice.Advice{Quote: "q", Encouragement: "e", Steps: []string{"s"}}}
	svc := &Service{Persistence: mp, Generator: gen}

	f, err := svc.SetFocus(context.Background(), "  Launch my project  ", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Text != "Launch my project" {
		t.Fatalf("expected trimmed focus, got %q", f.Text)
	}
	if mp.focus == nil || mp.focus.Advice.Encouragement != "e" {
		t.Fatalf("expected focus persisted, got %+v", mp.focus)
	}
}

func TestSetFocusLeavesNothingOnFailure(t *testing.T) {
	mp := &memoryPersistence{}
	gen := &fakeGenerator{failWith: advice.ErrProvider}
	svc := &Service{Persistence: mp, Generator: gen}

	if _, err := svc.SetFocus(context.Background(), "Launch my project", now); !errors.Is(err, advice.ErrProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if mp.focus != nil {
		t.Fatalf("no focus should persist on failure, got %+v", mp.focus)
	}
}

func TestSetFocusReusesSameDayCache(t *testing.T) {
	mp := &memoryPersistence{}
	gen := &fakeGenerator{advice: advice.Advice{Encouragement: "e"}}
	svc := &Service{Persistence: mp, Generator: gen}

	if _, err := svc.SetFocus(context.Background(), "Launch my project", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SetFocus(context.Background(), "Launch my project", now.Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.advices != 1 {
		t.Fatalf("expected one generator call, got %d", gen.advices)
	}
}

func TestServiceRequiresPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Reflections(); err == nil {
		t.Fatalf("expected error without persistence")
	}
	if _, err := svc.CompleteSession("x", "y", true, now); err == nil {
		t.Fatalf("expected error without persistence")
	}
}
