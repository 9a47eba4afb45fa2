// Package printers renders store contents for the plain CLI commands.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/boc321/momentum/pkg/advice"
	"github.com/boc321/momentum/pkg/catalog"
	"github.com/boc321/momentum/pkg/reflection"
	"github.com/boc321/momentum/pkg/stats"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Reflections prints the history, newest first.
func (pp *PrettyPrint) Reflections(reflections ...*reflection.Reflection) {
	if len(reflections) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.Separator = "  "
	for _, r := range reflections {
		tbl.AddRow(r.Row())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// StuckPoints prints the catalog in home-screen order.
func (pp *PrettyPrint) StuckPoints(points ...catalog.StuckPoint) {
	if len(points) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, sp := range points {
		tbl.AddRow(sp.Icon, sp.ID, sp.Title)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats prints the tracker buckets in sessions and minutes, plus the rolling
// count over the named window.
func (pp *PrettyPrint) Stats(s stats.ThinkingStats, rolling int, window string) {
	m := s.Minutes()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "SESSIONS", "MINUTES")
	tbl.AddRow("Today", s.Today, m.Today)
	tbl.AddRow("This Week", s.ThisWeek, m.ThisWeek)
	tbl.AddRow("This Month", s.ThisMonth, m.ThisMonth)
	tbl.AddRow("All Time", s.AllTime, m.AllTime)
	_, _ = fmt.Fprintln(color.Output, tbl)

	c := color.New(color.Faint)
	switch rolling {
	case 1:
		_, _ = c.Printf("1 Momentum Moment in the last %s\n", window)
	default:
		_, _ = c.Printf("%d Momentum Moments in the last %s\n", rolling, window)
	}
}

// Focus prints a daily-focus advice payload.
func (pp *PrettyPrint) Focus(focus string, a advice.Advice) {
	t := color.New(color.Bold)
	q := color.New(color.Italic)
	_, _ = t.Printf("Today's focus: %s\n\n", focus)
	if a.Quote != "" {
		_, _ = q.Printf("%q\n\n", a.Quote)
	}
	if a.Encouragement != "" {
		fmt.Println(a.Encouragement)
	}
	if len(a.Steps) > 0 {
		fmt.Println("")
		for i, step := range a.Steps {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	}
}
