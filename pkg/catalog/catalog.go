// Package catalog holds the static registry of stuck points and builds
// sessions from their prompt pools.
package catalog

import (
	"math/rand"
	"time"
)

// StuckPoint is an immutable catalog entry the user can pick on the home
// screen.
type StuckPoint struct {
	ID    string
	Title string
	Icon  string
}

// Prompt is one materialized step of a session.
type Prompt struct {
	Title    string
	Text     string
	Duration time.Duration
}

// ActiveSession carries everything the session engine needs for one run.
// Prompt text is materialized from the pools at creation time, so two
// sessions for the same stuck point can read differently.
type ActiveSession struct {
	StuckPointTitle string
	Intro           string
	Prompts         []Prompt
	Outro           string
}

// slot names and advisory durations, in fixed order.
var slots = []struct {
	title    string
	duration time.Duration
}{
	{"Entry", 2 * time.Minute},
	{"Unblocker", 3 * time.Minute},
	{"Momentum", 2 * time.Minute},
}

// PromptCount is the number of prompts in every session.
const PromptCount = 3

// pools holds the candidate texts for one stuck point, one pool per slot.
type pools struct {
	entry     []string
	unblocker []string
	momentum  []string
}

func (p pools) slot(i int) []string {
	switch i {
	case 0:
		return p.entry
	case 1:
		return p.unblocker
	default:
		return p.momentum
	}
}

type category struct {
	point   StuckPoint
	intro   string
	prompts pools
	outro   string
}

// Categories returns the stuck points in home-screen order. The returned
// slice is a copy; the catalog itself never changes.
func Categories() []StuckPoint {
	out := make([]StuckPoint, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.point)
	}
	return out
}

// Materialize builds an ActiveSession for the stuck point with the given id,
// rolling a fresh uniform-random pick from each slot's pool. The second
// return is false when the id is unknown; callers must guard.
func Materialize(id string) (*ActiveSession, bool) {
	for _, c := range categories {
		if c.point.ID != id {
			continue
		}
		s := &ActiveSession{
			StuckPointTitle: c.point.Title,
			Intro:           c.intro,
			Prompts:         make([]Prompt, 0, PromptCount),
			Outro:           c.outro,
		}
		for i, slot := range slots {
			pool := c.prompts.slot(i)
			s.Prompts = append(s.Prompts, Prompt{
				Title:    slot.title,
				Text:     pool[rand.Intn(len(pool))],
				Duration: slot.duration,
			})
		}
		return s, true
	}
	return nil, false
}
