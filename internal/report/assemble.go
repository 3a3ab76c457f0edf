package report

import (
	"net/url"
	"sort"
	"time"

	"github.com/steipete/wasearch/internal/store"
)

// Conversation is one contact's messages for a rendered day, split into the
// day-relative buckets.
type Conversation struct {
	ContactName  string
	Slug         string
	Prev         []store.Message
	Current      []store.Message
	Next         []store.Message
	FirstCurrent time.Time
}

// Assemble groups rows by contact, buckets each row against the three day
// windows, drops contacts with no current-day activity, and orders the rest
// by their first current-day message. Grouping is by key, not by input
// adjacency; but the sort is stable, so with contact-major input, ties on
// FirstCurrent keep contact-name order.
func Assemble(rows []store.Message, days DayWindows) []Conversation {
	byContact := map[string]*Conversation{}
	var order []*Conversation

	for _, m := range rows {
		c := byContact[m.ContactName]
		if c == nil {
			c = &Conversation{
				ContactName: m.ContactName,
				Slug:        url.PathEscape(m.ContactName),
			}
			byContact[m.ContactName] = c
			order = append(order, c)
		}

		switch {
		case days.Current.Contains(m.TS):
			if len(c.Current) == 0 {
				c.FirstCurrent = m.TS
			}
			c.Current = append(c.Current, m)
		case days.Prev.Contains(m.TS):
			c.Prev = append(c.Prev, m)
		case days.Next.Contains(m.TS):
			c.Next = append(c.Next, m)
		}
	}

	var out []Conversation
	for _, c := range order {
		if len(c.Current) == 0 {
			continue
		}
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FirstCurrent.Before(out[j].FirstCurrent)
	})
	return out
}
