package main

import (
	"os"

	"github.com/steipete/wasearch/internal/logging"
)

func main() {
	logging.Init(os.Getenv("WASEARCH_LOG"))
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
