// Package timeutil parses the human-friendly window strings accepted by the
// stats command.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is the rolling window used when none is provided.
const DefaultWindow = "7d"

var units = map[string]time.Duration{
	"h":     time.Hour,
	"hr":    time.Hour,
	"hrs":   time.Hour,
	"hour":  time.Hour,
	"hours": time.Hour,
	"d":     24 * time.Hour,
	"day":   24 * time.Hour,
	"days":  24 * time.Hour,
	"w":     7 * 24 * time.Hour,
	"wk":    7 * 24 * time.Hour,
	"wks":   7 * 24 * time.Hour,
	"week":  7 * 24 * time.Hour,
	"weeks": 7 * 24 * time.Hour,
}

// ParseWindow parses strings like "7d", "48h", or "1w2d" and returns the
// duration along with a compact canonical label. Empty input falls back to
// DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		s = DefaultWindow
	}

	var total time.Duration
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i {
			return 0, "", fmt.Errorf("invalid window segment %q", s[i:])
		}
		value, err := strconv.ParseInt(s[i:j], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", s[i:j], err)
		}

		k := j
		for k < len(s) && s[k] >= 'a' && s[k] <= 'z' {
			k++
		}
		unit, ok := units[s[j:k]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", s[j:k])
		}

		total += time.Duration(value) * unit
		i = k
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a duration using week/day/hour tokens.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0h"
	}

	steps := []struct {
		label string
		value time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
	}

	var b strings.Builder
	for _, s := range steps {
		if d < s.value {
			continue
		}
		fmt.Fprintf(&b, "%d%s", d/s.value, s.label)
		d %= s.value
	}
	if b.Len() == 0 {
		return "0h"
	}
	return b.String()
}
