package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetstream/sheetstream/commands"
)

func main() {
	root := &cobra.Command{
		Use:           commands.APP,
		Short:         "Streams Google Sheets and XLSX documents as normalized records",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().BoolVar(&commands.Debug, "debug", commands.Debug, "Enable debugging information")

	root.AddCommand(
		commands.Spec(),
		commands.Check(),
		commands.Discover(),
		commands.Read(),
		commands.Version(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
