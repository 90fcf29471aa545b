package commands

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sheetstream/sheetstream/protocol"
)

//go:embed spec.yaml
var specYAML []byte

// Spec returns the 'spec' command: it emits the connector specification
// document.
func Spec() *cobra.Command {
	return &cobra.Command{
		Use:   "spec",
		Short: "Emits the connector specification",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpec(os.Stdout)
		},
	}
}

func runSpec(w io.Writer) error {
	doc, err := connectorSpec()
	if err != nil {
		return err
	}

	return protocol.NewEmitter(w).Spec(doc)
}

func connectorSpec() (map[string]any, error) {
	var doc map[string]any

	if err := yaml.Unmarshal(specYAML, &doc); err != nil {
		return nil, fmt.Errorf("invalid embedded connector spec (%v)", err)
	}

	return doc, nil
}
