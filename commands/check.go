package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetstream/sheetstream/protocol"
	"github.com/sheetstream/sheetstream/sources"
)

// Check returns the 'check' command: it verifies that the configured
// spreadsheet is reachable with the supplied credentials and emits a
// CONNECTION_STATUS message.
func Check() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verifies access to the configured spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			emitter := protocol.NewEmitter(os.Stdout)

			provider, _, err := open(cmd.Context(), configPath)
			if err != nil {
				return emitter.Status(false, err.Error())
			}

			return runCheck(cmd.Context(), provider, emitter)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the connector configuration file")
	cmd.MarkFlagRequired("config")

	return cmd
}

func runCheck(ctx context.Context, provider sources.Provider, emitter *protocol.Emitter) error {
	count, err := provider.SheetCount(ctx)
	if err != nil {
		return emitter.Status(false, err.Error())
	}

	emitter.Infof("spreadsheet detected with %d sheet(s)", count)

	return emitter.Status(true, "")
}

func open(ctx context.Context, configPath string) (sources.Provider, sources.Config, error) {
	cfg, err := sources.LoadConfig(configPath)
	if err != nil {
		return nil, sources.Config{}, err
	}

	debugf("spreadsheet ID: %s  names_conversion: %v", cfg.SpreadsheetID, cfg.ConvertNames())

	provider, err := sources.Open(ctx, cfg)
	if err != nil {
		return nil, sources.Config{}, err
	}

	return provider, cfg, nil
}
