package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"

	"github.com/steipete/wasearch/internal/logging"
	"github.com/steipete/wasearch/internal/report"
	"github.com/steipete/wasearch/internal/store"
)

type SearchResult struct {
	OutputPath    string
	Conversations int
	Found         bool
}

// Search renders the report for one local calendar date. A date with no
// messages is not an error; the result just comes back with Found unset and
// no file written.
func (a *App) Search(dbPath, date string) (SearchResult, error) {
	days, err := report.ResolveDay(date, a.opts.Location)
	if err != nil {
		return SearchResult{}, err
	}

	db, err := store.OpenExisting(dbPath)
	if err != nil {
		return SearchResult{}, err
	}
	defer db.Close()

	start, end := days.FetchRange()
	rows, err := db.MessagesBetween(start, end)
	if err != nil {
		return SearchResult{}, fmt.Errorf("query messages: %w", err)
	}

	convs := report.Assemble(rows, days)
	if len(convs) == 0 {
		return SearchResult{}, nil
	}

	outPath := ReportPathFor(dbPath, date)
	f, err := os.Create(outPath)
	if err != nil {
		return SearchResult{}, fmt.Errorf("create report file %q: %w", outPath, err)
	}
	if err := report.Render(f, days, convs); err != nil {
		_ = f.Close()
		return SearchResult{}, err
	}
	if err := f.Close(); err != nil {
		return SearchResult{}, fmt.Errorf("write report file %q: %w", outPath, err)
	}

	if a.opts.OpenBrowser {
		openReport(outPath)
	}

	return SearchResult{
		OutputPath:    outPath,
		Conversations: len(convs),
		Found:         true,
	}, nil
}

// openReport launches the default browser. Best-effort only.
func openReport(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if err := browser.OpenFile(abs); err != nil {
		logging.Logger.Warn().Err(err).Str("path", abs).Msg("could not open browser")
	}
}

// Info summarizes an existing store.
func (a *App) Info(dbPath string) (store.Stats, []store.ContactCount, error) {
	db, err := store.OpenExisting(dbPath)
	if err != nil {
		return store.Stats{}, nil, err
	}
	defer db.Close()

	stats, err := db.GetStats()
	if err != nil {
		return store.Stats{}, nil, fmt.Errorf("read store stats: %w", err)
	}
	contacts, err := db.ListContacts()
	if err != nil {
		return store.Stats{}, nil, fmt.Errorf("list contacts: %w", err)
	}
	return stats, contacts, nil
}
