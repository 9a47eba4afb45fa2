// Package statsview provides the runner behind `momentum stats`.
package statsview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boc321/momentum/pkg/printers"
	"github.com/boc321/momentum/pkg/stats"
	"github.com/boc321/momentum/pkg/store"
)

type Stats struct {
	Window      time.Duration
	WindowLabel string
	Persistence store.Persistence
}

// Do prints the tracker buckets derived from the completion history, plus a
// rolling count over the requested window.
func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not compute stats, no persistence")
	}

	window, label := n.Window, n.WindowLabel
	if window <= 0 {
		window = 7 * 24 * time.Hour
		label = "7 days"
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")

	now := time.Now()
	completions := n.Persistence.Completions()

	pp.Title("Thinking Tracker")
	pp.Stats(stats.Compute(completions, now),
		stats.WindowCount(completions, now, window), label)
	return nil
}
