// Package app ties ingestion, the store, and the report pipeline together
// for the command layer.
package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type Options struct {
	Location    *time.Location
	OpenBrowser bool
	Version     string
}

type App struct {
	opts Options
}

func New(opts Options) (*App, error) {
	if opts.Location == nil {
		return nil, fmt.Errorf("timezone location is required")
	}
	return &App{opts: opts}, nil
}

func (a *App) Location() *time.Location { return a.opts.Location }
func (a *App) Version() string          { return a.opts.Version }

// StorePathFor derives the sibling store path for an input document.
func StorePathFor(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".db"
}

// ReportPathFor derives the output document name for a store and date. The
// file lands in the working directory.
func ReportPathFor(dbPath, date string) string {
	base := filepath.Base(dbPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%s.html", base, date)
}
