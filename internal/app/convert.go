package app

import (
	"fmt"
	"os"

	"github.com/steipete/wasearch/internal/ingest"
	"github.com/steipete/wasearch/internal/store"
)

type ConvertResult struct {
	DBPath   string
	Inserted int
	Skipped  int
}

// Convert reads the export document at inputPath and writes a fresh store at
// dbPath. The caller has already dealt with an existing store; any file left
// at dbPath here is an error, not something to silently replace.
func (a *App) Convert(inputPath, dbPath string) (ConvertResult, error) {
	doc, err := ingest.ReadExport(inputPath)
	if err != nil {
		return ConvertResult{}, err
	}

	if _, err := os.Stat(dbPath); err == nil {
		return ConvertResult{}, fmt.Errorf("database file %q already exists", dbPath)
	}

	res := ingest.Normalize(doc)

	db, err := store.Open(dbPath)
	if err != nil {
		return ConvertResult{}, err
	}
	defer db.Close()

	if err := db.InsertMessages(res.Messages); err != nil {
		return ConvertResult{}, fmt.Errorf("write store: %w", err)
	}

	return ConvertResult{
		DBPath:   dbPath,
		Inserted: len(res.Messages),
		Skipped:  res.Skipped,
	}, nil
}
