// Package store persists the app's flat key-value state on disk. Values are
// JSON; reads degrade to empty defaults when a value is missing or
// malformed, so a damaged store never takes the app down.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/boc321/momentum/pkg/advice"
	"github.com/boc321/momentum/pkg/reflection"
)

// Persisted keys. The namespace is flat; every value is whole-collection
// read/replace, so callers read-modify-write.
const (
	keyReflections        = "momentumReflections"
	keyCompletions        = "momentumCompletions"
	keyDailyFocus         = "dailyFocus"
	keyDailyFocusStamp    = "dailyFocusTimestamp"
	keyDailyAdvice        = "dailyAdvice"
	keyBackground         = "backgroundImage"
	keyBackgroundStamp    = "backgroundImageTimestamp"
)

// DailyFocus is the optional focus-of-the-day trio: the user's goal, when it
// was generated (ms since epoch), and the cached advice payload.
type DailyFocus struct {
	Text        string
	GeneratedAt int64
	Advice      advice.Advice
}

// Background is the cached background image pair.
type Background struct {
	URL       string
	Timestamp int64
}

// Persistence is the durable key-value contract. Reads never fail: absent or
// malformed values come back as empty defaults and are logged to stderr.
type Persistence interface {
	Reflections() []*reflection.Reflection
	SaveReflections(list []*reflection.Reflection) error
	Completions() []int64
	SaveCompletions(list []int64) error

	DailyFocus(now time.Time) (DailyFocus, bool)
	SaveDailyFocus(f DailyFocus) error
	ClearDailyFocus()

	Background() (Background, bool)
	SaveBackground(b Background) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil }, // flat namespace
		CacheSizeMax: 1024 * 1024,                          // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// readJSON loads key into out. Returns false when the key is absent. A value
// that fails to decode is treated as absent and logged.
func (p *persistence) readJSON(key string, out any) bool {
	if !p.d.Has(key) {
		return false
	}
	val, err := p.d.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
		return false
	}
	if err := json.Unmarshal(val, out); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
		return false
	}
	return true
}

func (p *persistence) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) erase(key string) {
	if err := p.d.Erase(key); err != nil && p.d.Has(key) {
		fmt.Fprintf(os.Stderr, "store: erase %s: %s\n", key, err)
	}
}

// Reflections returns the stored history, newest first. Records without a
// usable shape are dropped.
func (p *persistence) Reflections() []*reflection.Reflection {
	var list []*reflection.Reflection
	if !p.readJSON(keyReflections, &list) {
		return []*reflection.Reflection{}
	}
	kept := make([]*reflection.Reflection, 0, len(list))
	for _, r := range list {
		if r.Valid() {
			kept = append(kept, r)
		}
	}
	return kept
}

// SaveReflections overwrites the entire persisted list.
func (p *persistence) SaveReflections(list []*reflection.Reflection) error {
	return p.writeJSON(keyReflections, list)
}

// Completions returns the stored completion timestamps in insertion order.
func (p *persistence) Completions() []int64 {
	var list []int64
	if !p.readJSON(keyCompletions, &list) {
		return []int64{}
	}
	return list
}

// SaveCompletions overwrites the entire persisted timestamp list.
func (p *persistence) SaveCompletions(list []int64) error {
	return p.writeJSON(keyCompletions, list)
}

// DailyFocus loads the focus trio, clearing and reporting absent when the
// stored calendar date is not now's local date.
func (p *persistence) DailyFocus(now time.Time) (DailyFocus, bool) {
	var f DailyFocus
	if !p.readJSON(keyDailyFocus, &f.Text) {
		return DailyFocus{}, false
	}
	if !p.readJSON(keyDailyFocusStamp, &f.GeneratedAt) {
		p.ClearDailyFocus()
		return DailyFocus{}, false
	}
	if !sameDay(time.UnixMilli(f.GeneratedAt), now) {
		p.ClearDailyFocus()
		return DailyFocus{}, false
	}
	p.readJSON(keyDailyAdvice, &f.Advice)
	return f, true
}

// SaveDailyFocus writes the focus trio.
func (p *persistence) SaveDailyFocus(f DailyFocus) error {
	if err := p.writeJSON(keyDailyFocus, f.Text); err != nil {
		return err
	}
	if err := p.writeJSON(keyDailyFocusStamp, f.GeneratedAt); err != nil {
		return err
	}
	return p.writeJSON(keyDailyAdvice, f.Advice)
}

// ClearDailyFocus removes the focus trio.
func (p *persistence) ClearDailyFocus() {
	p.erase(keyDailyFocus)
	p.erase(keyDailyFocusStamp)
	p.erase(keyDailyAdvice)
}

// Background loads the cached background pair. Staleness is the caller's
// call; the store only reports what is there.
func (p *persistence) Background() (Background, bool) {
	var b Background
	if !p.readJSON(keyBackground, &b.URL) {
		return Background{}, false
	}
	if !p.readJSON(keyBackgroundStamp, &b.Timestamp) {
		return Background{}, false
	}
	return b, true
}

// SaveBackground writes the background pair.
func (p *persistence) SaveBackground(b Background) error {
	if err := p.writeJSON(keyBackground, b.URL); err != nil {
		return err
	}
	return p.writeJSON(keyBackgroundStamp, b.Timestamp)
}

func sameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
