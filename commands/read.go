package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sheetstream/sheetstream/protocol"
	"github.com/sheetstream/sheetstream/sources"
	"github.com/sheetstream/sheetstream/tabular"
)

// Read returns the 'read' command: it emits RECORD messages for every stream
// named in the configured catalog, followed by a single STATE message.
func Read() *cobra.Command {
	var configPath string
	var catalogPath string
	var statePath string

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Reads records from the configured streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			state := loadState(statePath)

			provider, cfg, err := open(cmd.Context(), configPath)
			if err != nil {
				return err
			}

			return runRead(cmd.Context(), provider, cfg.ConvertNames(), catalog, state, protocol.NewEmitter(os.Stdout))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to the connector configuration file")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to the configured catalog file")
	cmd.Flags().StringVar(&statePath, "state", "", "Path to a state file (optional, passed through unchanged)")
	cmd.MarkFlagRequired("config")
	cmd.MarkFlagRequired("catalog")

	return cmd
}

func runRead(ctx context.Context, provider sources.Provider, convertNames bool, catalog protocol.ConfiguredCatalog, state json.RawMessage, emitter *protocol.Emitter) error {
	raw, err := provider.Sheets(ctx)
	if err != nil {
		return err
	}

	requested := map[string]bool{}
	for _, configured := range catalog.Streams {
		requested[configured.Stream.Name] = true
	}

	emittedAt := time.Now().UnixMilli()

	for _, stream := range tabular.BuildStreams(raw, convertNames, emitter.Infof) {
		if !requested[stream.Name()] {
			continue
		}

		emitter.Infof("reading stream '%s'", stream.Name())

		count := 0
		err := stream.ReadRecords(func(record tabular.Record) error {
			count++
			return emitter.Record(stream.Name(), record, emittedAt)
		})
		if err != nil {
			return err
		}

		emitter.Infof("stream '%s': %d records emitted", stream.Name(), count)
	}

	return emitter.State(state)
}

func loadCatalog(path string) (protocol.ConfiguredCatalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return protocol.ConfiguredCatalog{}, fmt.Errorf("unable to read catalog file (%v)", err)
	}

	var catalog protocol.ConfiguredCatalog
	if err := json.Unmarshal(b, &catalog); err != nil {
		return protocol.ConfiguredCatalog{}, fmt.Errorf("invalid catalog file (%v)", err)
	}

	return catalog, nil
}

// loadState reads an opaque state payload. Missing or unreadable state is
// not an error - the read proceeds and acknowledges an empty state.
func loadState(path string) json.RawMessage {
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		warnf("unable to read state file (%v)", err)
		return nil
	}

	if !json.Valid(b) {
		warnf("state file is not valid JSON - ignoring")
		return nil
	}

	return json.RawMessage(b)
}
