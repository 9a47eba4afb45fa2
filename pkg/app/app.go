// Package app provides high-level operations shared by the CLI runners and
// the TUI. It wraps persistence, statistics, and the advice generator so
// both surfaces stay thin.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/boc321/momentum/pkg/advice"
	"github.com/boc321/momentum/pkg/reflection"
	"github.com/boc321/momentum/pkg/stats"
	"github.com/boc321/momentum/pkg/store"
)

// Service ties the persistence store and the advice generator together. The
// Generator is optional; advice features report ErrNoGenerator without it.
type Service struct {
	Persistence store.Persistence
	Generator   advice.Generator
}

// ErrNoGenerator is returned by advice operations when no generator is
// configured.
var ErrNoGenerator = errors.New("app: no advice generator configured")

var errNoPersistence = errors.New("app: no persistence configured")

// Reflections returns the stored history, newest first.
func (s *Service) Reflections() ([]*reflection.Reflection, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Reflections(), nil
}

// Completions returns the stored completion timestamps.
func (s *Service) Completions() ([]int64, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Completions(), nil
}

// CompleteSession records the end of a session at now: when text is present
// a reflection is prepended to the history, and a completion timestamp is
// always appended, whether or not anything was written. Returns the stored
// reflection, or nil when the session ended without one.
func (s *Service) CompleteSession(stuckPointTitle, text string, hasText bool, now time.Time) (*reflection.Reflection, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}

	var r *reflection.Reflection
	if hasText && strings.TrimSpace(text) != "" {
		r = reflection.New(stuckPointTitle, strings.TrimSpace(text), now)
		updated := append([]*reflection.Reflection{r}, s.Persistence.Reflections()...)
		if err := s.Persistence.SaveReflections(updated); err != nil {
			return nil, err
		}
	}

	completions := append(s.Persistence.Completions(), now.UnixMilli())
	if err := s.Persistence.SaveCompletions(completions); err != nil {
		return r, err
	}
	return r, nil
}

// Stats computes the calendar-bucketed tracker counters.
func (s *Service) Stats(now time.Time) (stats.ThinkingStats, error) {
	if s.Persistence == nil {
		return stats.ThinkingStats{}, errNoPersistence
	}
	return stats.Compute(s.Persistence.Completions(), now), nil
}

// WeeklyCount reports completions inside the trailing seven days.
func (s *Service) WeeklyCount(now time.Time) (int, error) {
	if s.Persistence == nil {
		return 0, errNoPersistence
	}
	return stats.WeeklyCount(s.Persistence.Completions(), now), nil
}

// Background returns the background image URL for now, reusing the cached
// one while it is fresh. On generation failure the placeholder URL is
// returned together with the error; the feature degrades, it never blocks.
func (s *Service) Background(ctx context.Context, now time.Time) (string, error) {
	if s.Persistence == nil {
		return advice.PlaceholderImageURL, errNoPersistence
	}
	if cached, ok := s.Persistence.Background(); ok {
		if now.UnixMilli()-cached.Timestamp < advice.BackgroundCacheTTL.Milliseconds() {
			return cached.URL, nil
		}
	}
	if s.Generator == nil {
		return advice.PlaceholderImageURL, ErrNoGenerator
	}

	url, err := s.Generator.GenerateBackground(ctx, advice.RandomTheme())
	if err != nil {
		return advice.PlaceholderImageURL, err
	}
	if err := s.Persistence.SaveBackground(store.Background{URL: url, Timestamp: now.UnixMilli()}); err != nil {
		return url, err
	}
	return url, nil
}

// CurrentFocus loads today's focus trio if one is stored and still valid.
func (s *Service) CurrentFocus(now time.Time) (store.DailyFocus, bool) {
	if s.Persistence == nil {
		return store.DailyFocus{}, false
	}
	return s.Persistence.DailyFocus(now)
}

// SetFocus requests advice for the submitted focus goal. A cached payload
// for the same goal on the same calendar day is reused. Nothing is persisted
// when the generator fails, so the user can simply retry.
func (s *Service) SetFocus(ctx context.Context, focus string, now time.Time) (store.DailyFocus, error) {
	if s.Persistence == nil {
		return store.DailyFocus{}, errNoPersistence
	}
	focus = strings.TrimSpace(focus)
	if focus == "" {
		return store.DailyFocus{}, errors.New("app: focus text required")
	}
	if cached, ok := s.Persistence.DailyFocus(now); ok && cached.Text == focus {
		return cached, nil
	}
	if s.Generator == nil {
		return store.DailyFocus{}, ErrNoGenerator
	}

	a, err := s.Generator.GetAdvice(ctx, focus)
	if err != nil {
		return store.DailyFocus{}, err
	}
	f := store.DailyFocus{Text: focus, GeneratedAt: now.UnixMilli(), Advice: *a}
	if err := s.Persistence.SaveDailyFocus(f); err != nil {
		return store.DailyFocus{}, err
	}
	return f, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
