package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testExport = `{
  "chats": [
    {
      "contactName": "Alice",
      "key": "15551230001@s.whatsapp.net",
      "messages": [
        {"type": "text", "timestamp": "2025-01-29T20:00:00Z", "text": "yesterday"},
        {"type": "text", "timestamp": "2025-01-30T15:00:00Z", "text": "hello"},
        {"type": "text", "timestamp": "2025-01-30T15:01:00Z", "fromMe": true, "text": "hi back"},
        {"type": "image", "timestamp": "2025-01-30T15:02:00Z"}
      ]
    },
    {
      "contactName": "Family",
      "key": "15551230002-77@g.us",
      "messages": [
        {"type": "text", "timestamp": "2025-01-30T14:00:00Z", "remoteResourceDisplayName": "Bob Smith", "text": "group hello"}
      ]
    },
    {
      "contactName": "Carol",
      "key": "15551230003@s.whatsapp.net",
      "messages": [
        {"type": "text", "timestamp": "2025-01-28T12:00:00Z", "text": "old news"}
      ]
    }
  ]
}`

func newTestApp(t *testing.T) *App {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	a, err := New(Options{Location: loc, OpenBrowser: false, Version: "test"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func writeExport(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "ChatLog.json")
	if err := os.WriteFile(path, []byte(testExport), 0600); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return path
}

func TestConvertThenSearch(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	a := newTestApp(t)

	inputPath := writeExport(t, dir)
	dbPath := StorePathFor(inputPath)
	if dbPath != filepath.Join(dir, "ChatLog.db") {
		t.Fatalf("unexpected store path: %q", dbPath)
	}

	res, err := a.Convert(inputPath, dbPath)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.Inserted != 5 {
		t.Fatalf("expected 5 inserted messages, got %d", res.Inserted)
	}
	if res.Skipped != 0 {
		t.Fatalf("expected no skipped messages, got %d", res.Skipped)
	}

	sr, err := a.Search(dbPath, "2025-01-30")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !sr.Found {
		t.Fatalf("expected messages for 2025-01-30")
	}
	if sr.Conversations != 2 {
		t.Fatalf("expected 2 conversations (Carol has no current-day activity), got %d", sr.Conversations)
	}
	if sr.OutputPath != "ChatLog_2025-01-30.html" {
		t.Fatalf("unexpected output path: %q", sr.OutputPath)
	}

	data, err := os.ReadFile(sr.OutputPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "group hello") {
		t.Fatalf("report is missing messages:\n%s", out)
	}
	// Family's first current message is 08:00 local, Alice's 09:00: group first.
	if strings.Index(out, "Family") > strings.Index(out, "Alice") {
		t.Fatalf("expected Family before Alice in report")
	}
	if strings.Contains(out, "Carol") {
		t.Fatalf("Carol has no current-day messages and must not render")
	}
	// Alice's previous-day message is in the collapsed panel.
	if !strings.Contains(out, "yesterday") {
		t.Fatalf("expected previous-day context in report")
	}
}

func TestSearchNoMessagesWritesNothing(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	a := newTestApp(t)

	inputPath := writeExport(t, dir)
	dbPath := StorePathFor(inputPath)
	if _, err := a.Convert(inputPath, dbPath); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	sr, err := a.Search(dbPath, "2030-06-15")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if sr.Found {
		t.Fatalf("expected no messages, got %+v", sr)
	}
	if _, err := os.Stat(ReportPathFor(dbPath, "2030-06-15")); !os.IsNotExist(err) {
		t.Fatalf("expected no report file, stat err=%v", err)
	}
}

func TestSearchInvalidInputs(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	a := newTestApp(t)

	inputPath := writeExport(t, dir)
	dbPath := StorePathFor(inputPath)
	if _, err := a.Convert(inputPath, dbPath); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if _, err := a.Search(dbPath, "30-01-2025"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
	if _, err := a.Search(filepath.Join(dir, "missing.db"), "2025-01-30"); err == nil {
		t.Fatalf("expected error for missing store")
	}
}

func TestConvertRefusesExistingStore(t *testing.T) {
	dir := t.TempDir()
	a := newTestApp(t)

	inputPath := writeExport(t, dir)
	dbPath := StorePathFor(inputPath)
	if _, err := a.Convert(inputPath, dbPath); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	before, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}

	if _, err := a.Convert(inputPath, dbPath); err == nil {
		t.Fatalf("expected error converting over an existing store")
	}

	after, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("re-read store: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("existing store changed by refused conversion")
	}
}

func TestConvertFatalInputs(t *testing.T) {
	dir := t.TempDir()
	a := newTestApp(t)

	if _, err := a.Convert(filepath.Join(dir, "nope.json"), filepath.Join(dir, "nope.db")); err == nil {
		t.Fatalf("expected error for missing input file")
	}

	badPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write bad input: %v", err)
	}
	if _, err := a.Convert(badPath, StorePathFor(badPath)); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestReportPathFor(t *testing.T) {
	got := ReportPathFor("/data/exports/ChatLog.db", "2025-01-30")
	if got != "ChatLog_2025-01-30.html" {
		t.Fatalf("unexpected report path: %q", got)
	}
}
