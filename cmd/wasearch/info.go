package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newInfoCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info <ChatLog.db>",
		Short: "Show store statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return cmd.Help()
			}

			a, err := newApp(flags)
			if err != nil {
				return err
			}

			stats, contacts, err := a.Info(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"stats":    stats,
					"contacts": contacts,
				})
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Messages:\t%d\n", stats.Messages)
			fmt.Fprintf(w, "Contacts:\t%d\n", stats.Contacts)
			if stats.Messages > 0 {
				fmt.Fprintf(w, "First:\t%s\n", formatLocal(stats.FirstTS, a.Location()))
				fmt.Fprintf(w, "Last:\t%s\n", formatLocal(stats.LastTS, a.Location()))
			}
			_ = w.Flush()

			if len(contacts) > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
				w = tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "CONTACT\tMESSAGES")
				for _, c := range contacts {
					fmt.Fprintf(w, "%s\t%d\n", truncate(c.ContactName, 32), c.Messages)
				}
				_ = w.Flush()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON instead of human-readable text")
	return cmd
}

func formatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02 15:04:05 MST")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
