package report

import (
	"strings"
	"testing"
	"time"

	"github.com/steipete/wasearch/internal/store"
)

func renderToString(t *testing.T, days DayWindows, convs []Conversation) string {
	t.Helper()
	var sb strings.Builder
	if err := Render(&sb, days, convs); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return sb.String()
}

func TestRenderEscapesMessageText(t *testing.T) {
	days := testDays(t)
	loc := days.Location

	rows := []store.Message{
		row("Alice", time.Date(2025, 1, 30, 9, 0, 0, 0, loc), "<script>alert(1)</script>\nsecond line"),
	}
	out := renderToString(t, days, Assemble(rows, days))

	if strings.Contains(out, "<script>alert(1)") {
		t.Fatalf("unescaped script tag in output:\n%s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;alert(1)&lt;/script&gt;<br>second line") {
		t.Fatalf("expected escaped body with line break, got:\n%s", out)
	}
}

func TestRenderEscapesContactName(t *testing.T) {
	days := testDays(t)
	loc := days.Location

	rows := []store.Message{
		row("<b>Alice</b>", time.Date(2025, 1, 30, 9, 0, 0, 0, loc), "hi"),
	}
	out := renderToString(t, days, Assemble(rows, days))

	if strings.Contains(out, "<b>Alice</b>") {
		t.Fatalf("unescaped contact name in output:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;Alice&lt;/b&gt;") {
		t.Fatalf("expected escaped contact name, got:\n%s", out)
	}
}

func TestRenderTimesAndHeading(t *testing.T) {
	days := testDays(t)
	loc := days.Location

	rows := []store.Message{
		row("Alice", time.Date(2025, 1, 30, 9, 5, 0, 0, loc), "morning"),
		row("Alice", time.Date(2025, 1, 30, 21, 30, 0, 0, loc), "evening"),
	}
	out := renderToString(t, days, Assemble(rows, days))

	if !strings.Contains(out, "<title>Chat Logs for January 30, 2025</title>") {
		t.Fatalf("missing title, got:\n%s", out)
	}
	if !strings.Contains(out, "<h1>Chat Logs for January 30, 2025</h1>") {
		t.Fatalf("missing heading")
	}
	// 12-hour local times without a leading zero.
	if !strings.Contains(out, "9:05 AM") || !strings.Contains(out, "9:30 PM") {
		t.Fatalf("expected formatted times, got:\n%s", out)
	}
	if strings.Contains(out, "09:05 AM") {
		t.Fatalf("leading zero in time output")
	}
}

func TestRenderBubbleClassesAndPanels(t *testing.T) {
	days := testDays(t)
	loc := days.Location

	rows := []store.Message{
		row("Alice", time.Date(2025, 1, 29, 20, 0, 0, 0, loc), "yesterday"),
		row("Alice", time.Date(2025, 1, 30, 9, 0, 0, 0, loc), "today in"),
	}
	sent := row("Alice", time.Date(2025, 1, 30, 9, 1, 0, 0, loc), "today out")
	sent.FromMe = true
	rows = append(rows, sent)

	out := renderToString(t, days, Assemble(rows, days))

	if !strings.Contains(out, `class="message received"`) || !strings.Contains(out, `class="message sent"`) {
		t.Fatalf("expected sent and received bubbles, got:\n%s", out)
	}
	if !strings.Contains(out, `id="prev-Alice"`) || !strings.Contains(out, `id="next-Alice"`) {
		t.Fatalf("expected prev/next panels, got:\n%s", out)
	}
	// Prev has content, next is empty: its control must be inert.
	prevBtn := `data-reveal="prev-Alice" title="Show previous day">`
	nextBtn := `data-reveal="next-Alice" title="Show next day" disabled>`
	if !strings.Contains(out, prevBtn) {
		t.Fatalf("expected active prev control, got:\n%s", out)
	}
	if !strings.Contains(out, nextBtn) {
		t.Fatalf("expected disabled next control, got:\n%s", out)
	}
	if !strings.Contains(out, `class="date-divider">January 30, 2025<`) {
		t.Fatalf("expected date divider, got:\n%s", out)
	}
}

func TestRenderConversationOrderMatchesAssembly(t *testing.T) {
	days := testDays(t)
	loc := days.Location

	rows := []store.Message{
		row("Alice", time.Date(2025, 1, 30, 9, 0, 0, 0, loc), "later"),
		row("Family", time.Date(2025, 1, 30, 8, 0, 0, 0, loc), "earlier"),
	}
	out := renderToString(t, days, Assemble(rows, days))

	familyAt := strings.Index(out, "Family")
	aliceAt := strings.Index(out, "Alice")
	if familyAt < 0 || aliceAt < 0 || familyAt > aliceAt {
		t.Fatalf("expected Family before Alice (family=%d alice=%d)", familyAt, aliceAt)
	}
}
