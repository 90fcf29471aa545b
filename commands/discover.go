package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetstream/sheetstream/protocol"
	"github.com/sheetstream/sheetstream/sources"
	"github.com/sheetstream/sheetstream/tabular"
)

// Discover returns the 'discover' command: it builds every stream of the
// configured spreadsheet and emits a CATALOG message with each stream's name
// and inferred schema.
func Discover() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Emits the catalog of discoverable streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, cfg, err := open(cmd.Context(), configPath)
			if err != nil {
				return err
			}

			return runDiscover(cmd.Context(), provider, cfg.ConvertNames(), protocol.NewEmitter(os.Stdout))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the connector configuration file")
	cmd.MarkFlagRequired("config")

	return cmd
}

func runDiscover(ctx context.Context, provider sources.Provider, convertNames bool, emitter *protocol.Emitter) error {
	raw, err := provider.Sheets(ctx)
	if err != nil {
		return err
	}

	catalog := protocol.Catalog{Streams: []protocol.CatalogStream{}}

	for _, stream := range tabular.BuildStreams(raw, convertNames, emitter.Infof) {
		catalog.Streams = append(catalog.Streams, protocol.CatalogStream{
			Name:               stream.Name(),
			JSONSchema:         stream.Schema(),
			SupportedSyncModes: []string{protocol.SyncModeFullRefresh},
		})
	}

	return emitter.Catalog(catalog)
}
