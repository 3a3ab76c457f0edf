package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steipete/wasearch/internal/app"
	"github.com/steipete/wasearch/internal/config"
)

var version = "dev"

type rootFlags struct {
	tz     string
	noOpen bool
}

func execute(args []string) error {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:           "wasearch",
		Short:         "Convert and browse exported chat logs by date",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	rootCmd.SetVersionTemplate("wasearch {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flags.tz, "tz", "", "IANA timezone for day boundaries (default: config, then "+config.DefaultTimezone+")")
	rootCmd.PersistentFlags().BoolVar(&flags.noOpen, "no-open", false, "do not open the report in a browser")

	rootCmd.AddCommand(newConvertCmd(&flags))
	rootCmd.AddCommand(newSearchCmd(&flags))
	rootCmd.AddCommand(newInfoCmd(&flags))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func newApp(flags *rootFlags) (*app.App, error) {
	cfg := config.Load(flags.tz, flags.noOpen)
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return app.New(app.Options{
		Location:    loc,
		OpenBrowser: cfg.OpenBrowser,
		Version:     version,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wasearch %s\n", version)
		},
	}
}
