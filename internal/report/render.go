package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	_ "embed"

	"github.com/steipete/wasearch/internal/store"
)

//go:embed page.html.tmpl
var pageSource string

var pageTmpl = template.Must(template.New("page").Parse(pageSource))

type page struct {
	DateLabel     string
	Conversations []conversationView
}

type conversationView struct {
	Name    string
	Slug    string
	HasPrev bool
	HasNext bool
	Prev    []messageView
	Current []messageView
	Next    []messageView
}

type messageView struct {
	Body template.HTML
	Time string
	Sent bool
}

// Render writes the self-contained report document. Every message body and
// contact name passes through template escaping; formatBody is the only
// place escaped text is widened back to markup.
func Render(w io.Writer, days DayWindows, convs []Conversation) error {
	p := page{DateLabel: days.Date.Format("January 2, 2006")}
	for _, c := range convs {
		p.Conversations = append(p.Conversations, conversationView{
			Name:    c.ContactName,
			Slug:    c.Slug,
			HasPrev: len(c.Prev) > 0,
			HasNext: len(c.Next) > 0,
			Prev:    messageViews(c.Prev, days.Location),
			Current: messageViews(c.Current, days.Location),
			Next:    messageViews(c.Next, days.Location),
		})
	}
	if err := pageTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func messageViews(msgs []store.Message, loc *time.Location) []messageView {
	out := make([]messageView, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageView{
			Body: formatBody(m.Text),
			Time: m.TS.In(loc).Format("3:04 PM"),
			Sent: m.FromMe,
		})
	}
	return out
}

// formatBody escapes user text, then turns newlines into line breaks.
func formatBody(text string) template.HTML {
	escaped := template.HTMLEscapeString(text)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
