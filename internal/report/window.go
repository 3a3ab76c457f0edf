// Package report turns a flat, time-ranged message query into a rendered
// per-day conversation view.
package report

import (
	"fmt"
	"time"
)

// Window is a half-open instant range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// DayWindows are the three local calendar days around a target date,
// expressed as instant ranges. Boundaries are true local midnights in the
// zone they were resolved for, so a DST-shortened or -lengthened day keeps
// its real extent.
type DayWindows struct {
	Date     time.Time // local midnight of the target date
	Location *time.Location
	Prev     Window
	Current  Window
	Next     Window
}

// ResolveDay computes the prev/current/next day windows for a YYYY-MM-DD
// date in the given zone.
func ResolveDay(date string, loc *time.Location) (DayWindows, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DayWindows{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	start := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	return DayWindows{
		Date:     start,
		Location: loc,
		Prev:     Window{Start: start.AddDate(0, 0, -1), End: start},
		Current:  Window{Start: start, End: end},
		Next:     Window{Start: end, End: end.AddDate(0, 0, 1)},
	}, nil
}

// FetchRange is the single UTC range covering all three windows.
func (d DayWindows) FetchRange() (start, end time.Time) {
	return d.Prev.Start.UTC(), d.Next.End.UTC()
}
