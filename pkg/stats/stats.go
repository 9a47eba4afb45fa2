// Package stats derives usage counters from the stored completion
// timestamps. Nothing here is persisted; everything is recomputed on demand.
package stats

import "time"

// SessionMinutes is the fixed per-session duration used for the minutes
// view. Actual elapsed time per session is not tracked.
const SessionMinutes = 10


// ThinkingStats buckets completions by calendar boundary. Values are session
// counts; see Minutes for the duration-weighted view.
type ThinkingStats struct {
	Today     int
	ThisWeek  int
	ThisMonth int
	AllTime   int
}

// Minutes returns the same buckets weighted by the fixed session duration.
func (s ThinkingStats) Minutes() ThinkingStats {
	return ThinkingStats{
		Today:     s.Today * SessionMinutes,
		ThisWeek:  s.ThisWeek * SessionMinutes,
		ThisMonth: s.ThisMonth * SessionMinutes,
		AllTime:   s.AllTime * SessionMinutes,
	}
}

// Compute buckets the millisecond timestamps against now's local calendar.
// Today starts at local midnight; the week starts weekday-index days before
// that (Sunday is day zero); the month starts at midnight on the 1st. Each
// bucket counts timestamps between its boundary and now inclusive; AllTime
// counts everything stored.
func Compute(completions []int64, now time.Time) ThinkingStats {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.UnixMilli() - int64(now.Weekday())*24*60*60*1000
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	dayMs := dayStart.UnixMilli()
	monthMs := monthStart.UnixMilli()
	nowMs := now.UnixMilli()

	s := ThinkingStats{AllTime: len(completions)}
	for _, ts := range completions {
		if ts > nowMs {
			continue
		}
		if ts >= dayMs {
			s.Today++
		}
		if ts >= weekStart {
			s.ThisWeek++
		}
		if ts >= monthMs {
			s.ThisMonth++
		}
	}
	return s
}

// WindowCount reports completions inside a trailing window ending at now.
// This is not a calendar bucket like Compute produces; the boundary slides
// with the clock.
func WindowCount(completions []int64, now time.Time, window time.Duration) int {
	cutoff := now.UnixMilli() - window.Milliseconds()
	n := 0
	for _, ts := range completions {
		if ts > cutoff {
			n++
		}
	}
	return n
}

// WeeklyCount is the trailing seven-day WindowCount. The home screen footer
// uses this rolling count while the tracker screen uses calendar buckets.
func WeeklyCount(completions []int64, now time.Time) int {
	return WindowCount(completions, now, 7*24*time.Hour)
}
