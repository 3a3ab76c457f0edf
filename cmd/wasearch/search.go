package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "search <ChatLog.db> <YYYY-MM-DD>",
		Short: "Render an HTML view of all conversations on one date",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Missing arguments show usage and exit clean.
			if len(args) < 2 {
				return cmd.Help()
			}

			a, err := newApp(flags)
			if err != nil {
				return err
			}

			res, err := a.Search(args[0], args[1])
			if err != nil {
				return err
			}
			if !res.Found {
				fmt.Fprintf(cmd.OutOrStdout(), "No messages found for %s\n", args[1])
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d conversations to %s\n", res.Conversations, res.OutputPath)
			return nil
		},
	}
}
