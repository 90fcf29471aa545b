package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version returns the 'version' command.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Displays the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", APP, VERSION)
		},
	}
}
