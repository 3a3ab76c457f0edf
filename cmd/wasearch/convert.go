package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/steipete/wasearch/internal/app"
)

func newConvertCmd(flags *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "convert <ChatLog.json>",
		Short: "Convert a chat-log JSON export into a sibling SQLite store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Missing arguments show usage and exit clean.
			if len(args) < 1 {
				return cmd.Help()
			}

			a, err := newApp(flags)
			if err != nil {
				return err
			}

			inputPath := args[0]
			dbPath := app.StorePathFor(inputPath)

			if _, err := os.Stat(dbPath); err == nil {
				ok, err := confirmOverwrite(cmd, dbPath, force)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Conversion cancelled.")
					return nil
				}
				if err := os.Remove(dbPath); err != nil {
					return fmt.Errorf("remove existing database: %w", err)
				}
			}

			res, err := a.Convert(inputPath, dbPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d text messages into %s\n", res.Inserted, res.DBPath)
			if res.Skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d malformed messages.\n", res.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing database without prompting")
	return cmd
}

// confirmOverwrite asks before a destructive rewrite. Without a terminal on
// stdin there is nobody to ask, so an existing store is an error unless
// --force was given.
func confirmOverwrite(cmd *cobra.Command, dbPath string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("database file %q already exists; re-run with --force to overwrite", dbPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Database file %q already exists. Overwrite? (y/N): ", dbPath)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
